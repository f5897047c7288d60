package schema

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"google.golang.org/protobuf/encoding/protowire"
)

// Marshal encodes the object as a tag/value stream. Field ids are written in
// ascending order and occurrences in insertion order, so equal objects always
// produce equal bytes.
func (o *Object) Marshal() []byte {
	return o.AppendMarshal(nil)
}

func (o *Object) AppendMarshal(b []byte) []byte {
	for _, id := range o.FieldIDs() {
		num := protowire.Number(id)
		for _, v := range o.fields[id] {
			switch v.kind {
			case kindVarint:
				b = protowire.AppendTag(b, num, protowire.VarintType)
				b = protowire.AppendVarint(b, v.num)
			case kindFixed32:
				b = protowire.AppendTag(b, num, protowire.Fixed32Type)
				b = protowire.AppendFixed32(b, uint32(v.num))
			case kindFixed64:
				b = protowire.AppendTag(b, num, protowire.Fixed64Type)
				b = protowire.AppendFixed64(b, v.num)
			case kindBytes:
				b = protowire.AppendTag(b, num, protowire.BytesType)
				if v.obj != nil {
					b = protowire.AppendBytes(b, v.obj.Marshal())
				} else {
					b = protowire.AppendBytes(b, v.raw)
				}
			}
		}
	}
	return b
}

// Unmarshal replaces the object's contents with the fields encoded in b. The
// input is copied; nested objects stay encoded until first accessed.
func (o *Object) Unmarshal(b []byte) error {
	fields := make(map[FieldID][]value)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return NewSchemaError("malformed tag", protowire.ParseError(n))
		}
		b = b[n:]

		id := FieldID(num)
		if !id.Valid() {
			return NewSchemaError(fmt.Sprintf("field id %d out of range", num), nil)
		}
		var v value
		switch typ {
		case protowire.VarintType:
			x, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return NewSchemaError(fmt.Sprintf("field %d", id), protowire.ParseError(n))
			}
			v = value{kind: kindVarint, num: x}
			b = b[n:]
		case protowire.Fixed32Type:
			x, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return NewSchemaError(fmt.Sprintf("field %d", id), protowire.ParseError(n))
			}
			v = value{kind: kindFixed32, num: uint64(x)}
			b = b[n:]
		case protowire.Fixed64Type:
			x, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return NewSchemaError(fmt.Sprintf("field %d", id), protowire.ParseError(n))
			}
			v = value{kind: kindFixed64, num: x}
			b = b[n:]
		case protowire.BytesType:
			x, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return NewSchemaError(fmt.Sprintf("field %d", id), protowire.ParseError(n))
			}
			raw := make([]byte, len(x))
			copy(raw, x)
			v = value{kind: kindBytes, raw: raw}
			b = b[n:]
		default:
			return NewSchemaError(fmt.Sprintf("field %d: unsupported wire type %d", id, typ), nil)
		}
		fields[id] = append(fields[id], v)
	}
	o.fields = fields
	return nil
}

// Unmarshal decodes b into a new object.
func Unmarshal(b []byte) (*Object, error) {
	o := NewObject()
	if err := o.Unmarshal(b); err != nil {
		return nil, err
	}
	return o, nil
}

// Fingerprint hashes the canonical encoding of the object.
func (o *Object) Fingerprint() uint64 {
	return xxhash.Sum64(o.Marshal())
}

// Equal reports whether both objects encode to the same bytes.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	return bytes.Equal(o.Marshal(), other.Marshal())
}
