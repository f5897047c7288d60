// Package schema implements the field codecs used by generated component code
// and the self-describing object format they read and write.
package schema

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// FieldID identifies a field inside an Object. Ids are assigned by the schema
// and must never be reused for a different type.
type FieldID uint32

type ComponentID uint32

type CommandIndex uint32

type EntityID int64

const (
	MinFieldID FieldID = FieldID(protowire.MinValidNumber)
	MaxFieldID FieldID = FieldID(protowire.MaxValidNumber)

	// Map entries are nested objects holding the key and the value under these ids.
	MapKeyFieldID   FieldID = 1
	MapValueFieldID FieldID = 2
)

// Envelope ids used by ComponentUpdate and the command wrappers.
const (
	updateFieldsID  FieldID = 1
	updateEventsID  FieldID = 2
	updateClearedID FieldID = 3

	commandIndexID   FieldID = 1
	commandPayloadID FieldID = 2
)

func (id FieldID) Valid() bool {
	return id >= MinFieldID && id <= MaxFieldID
}

func mustValidField(id FieldID) {
	if !id.Valid() {
		panic(fmt.Sprintf("schema: field id %d out of range [%d, %d]", id, MinFieldID, MaxFieldID))
	}
}
