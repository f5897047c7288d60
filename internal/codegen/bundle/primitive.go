package bundle

type Primitive uint8

const (
	PrimitiveInt32 Primitive = iota + 1
	PrimitiveInt64
	PrimitiveUint32
	PrimitiveUint64
	PrimitiveSint32
	PrimitiveSint64
	PrimitiveFixed32
	PrimitiveFixed64
	PrimitiveSfixed32
	PrimitiveSfixed64
	PrimitiveBool
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveString
	PrimitiveEntityID
	PrimitiveBytes
)

var primitiveNames = map[string]Primitive{
	"Int32":    PrimitiveInt32,
	"Int64":    PrimitiveInt64,
	"Uint32":   PrimitiveUint32,
	"Uint64":   PrimitiveUint64,
	"Sint32":   PrimitiveSint32,
	"Sint64":   PrimitiveSint64,
	"Fixed32":  PrimitiveFixed32,
	"Fixed64":  PrimitiveFixed64,
	"Sfixed32": PrimitiveSfixed32,
	"Sfixed64": PrimitiveSfixed64,
	"Bool":     PrimitiveBool,
	"Float":    PrimitiveFloat,
	"Double":   PrimitiveDouble,
	"String":   PrimitiveString,
	"EntityId": PrimitiveEntityID,
	"Bytes":    PrimitiveBytes,
}

// ParsePrimitive maps a bundle primitive name onto a Primitive.
func ParsePrimitive(name string) (Primitive, bool) {
	p, ok := primitiveNames[name]
	return p, ok
}
