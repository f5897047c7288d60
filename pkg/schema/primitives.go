package schema

import (
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

func varint[T any](to func(T) uint64, from func(uint64) T) codec[T] {
	return codec[T]{
		add: func(o *Object, id FieldID, v T) { o.AddVarint(id, to(v)) },
		index: func(o *Object, id FieldID, i int) (T, error) {
			raw, err := o.Varint(id, i)
			if err != nil {
				var zero T
				return zero, err
			}
			return from(raw), nil
		},
	}
}

func fixed32[T any](to func(T) uint32, from func(uint32) T) codec[T] {
	return codec[T]{
		add: func(o *Object, id FieldID, v T) { o.AddFixed32(id, to(v)) },
		index: func(o *Object, id FieldID, i int) (T, error) {
			raw, err := o.Fixed32(id, i)
			if err != nil {
				var zero T
				return zero, err
			}
			return from(raw), nil
		},
	}
}

func fixed64[T any](to func(T) uint64, from func(uint64) T) codec[T] {
	return codec[T]{
		add: func(o *Object, id FieldID, v T) { o.AddFixed64(id, to(v)) },
		index: func(o *Object, id FieldID, i int) (T, error) {
			raw, err := o.Fixed64(id, i)
			if err != nil {
				var zero T
				return zero, err
			}
			return from(raw), nil
		},
	}
}

// Primitive field codecs. Integer encodings follow protobuf: int32 and int64
// are sign-extended varints, sint32 and sint64 are zigzag varints.
var (
	Int32 IndexedField[int32] = varint(
		func(v int32) uint64 { return uint64(int64(v)) },
		func(x uint64) int32 { return int32(x) },
	)
	Int64 IndexedField[int64] = varint(
		func(v int64) uint64 { return uint64(v) },
		func(x uint64) int64 { return int64(x) },
	)
	Uint32 IndexedField[uint32] = varint(
		func(v uint32) uint64 { return uint64(v) },
		func(x uint64) uint32 { return uint32(x) },
	)
	Uint64 IndexedField[uint64] = varint(
		func(v uint64) uint64 { return v },
		func(x uint64) uint64 { return x },
	)
	SInt32 IndexedField[int32] = varint(
		func(v int32) uint64 { return protowire.EncodeZigZag(int64(v)) },
		func(x uint64) int32 { return int32(protowire.DecodeZigZag(x & math.MaxUint32)) },
	)
	SInt64 IndexedField[int64] = varint(
		protowire.EncodeZigZag,
		protowire.DecodeZigZag,
	)
	Bool IndexedField[bool] = varint(
		func(v bool) uint64 { return protowire.EncodeBool(v) },
		func(x uint64) bool { return x != 0 },
	)
	Entity IndexedField[EntityID] = varint(
		func(v EntityID) uint64 { return uint64(v) },
		func(x uint64) EntityID { return EntityID(x) },
	)

	Fixed32 IndexedField[uint32] = fixed32(
		func(v uint32) uint32 { return v },
		func(x uint32) uint32 { return x },
	)
	SFixed32 IndexedField[int32] = fixed32(
		func(v int32) uint32 { return uint32(v) },
		func(x uint32) int32 { return int32(x) },
	)
	Float IndexedField[float32] = fixed32(
		math.Float32bits,
		math.Float32frombits,
	)

	Fixed64 IndexedField[uint64] = fixed64(
		func(v uint64) uint64 { return v },
		func(x uint64) uint64 { return x },
	)
	SFixed64 IndexedField[int64] = fixed64(
		func(v int64) uint64 { return uint64(v) },
		func(x uint64) int64 { return int64(x) },
	)
	Double IndexedField[float64] = fixed64(
		math.Float64bits,
		math.Float64frombits,
	)

	Bytes IndexedField[[]byte] = codec[[]byte]{
		add: func(o *Object, id FieldID, v []byte) { o.AddBytes(id, v) },
		index: func(o *Object, id FieldID, i int) ([]byte, error) {
			raw, err := o.Bytes(id, i)
			if err != nil || len(raw) == 0 {
				return nil, err
			}
			out := make([]byte, len(raw))
			copy(out, raw)
			return out, nil
		},
	}

	String IndexedField[string] = codec[string]{
		add: func(o *Object, id FieldID, v string) { o.AddBytes(id, []byte(v)) },
		index: func(o *Object, id FieldID, i int) (string, error) {
			raw, err := o.Bytes(id, i)
			if err != nil {
				return "", err
			}
			if !utf8.Valid(raw) {
				return "", NewSchemaError("invalid UTF-8 in string field", nil)
			}
			return string(raw), nil
		},
	}

	// BytesKey carries bytes on the wire but decodes to a string, so bytes can
	// be used as a comparable map key.
	BytesKey IndexedField[string] = codec[string]{
		add: func(o *Object, id FieldID, v string) { o.AddBytes(id, []byte(v)) },
		index: func(o *Object, id FieldID, i int) (string, error) {
			raw, err := o.Bytes(id, i)
			if err != nil {
				return "", err
			}
			return string(raw), nil
		},
	}
)
