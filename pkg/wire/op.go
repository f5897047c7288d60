// Package wire wraps encoded component data, updates and commands in an
// envelope that transports can move as opaque bytes.
package wire

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/schemagen/pkg/schema"
)

type OpType uint32

const (
	OpAddComponent OpType = iota + 1
	OpRemoveComponent
	OpComponentUpdate
	OpCommandRequest
	OpCommandResponse
)

func (t OpType) Valid() bool {
	return t >= OpAddComponent && t <= OpCommandResponse
}

func (t OpType) String() string {
	switch t {
	case OpAddComponent:
		return "add_component"
	case OpRemoveComponent:
		return "remove_component"
	case OpComponentUpdate:
		return "component_update"
	case OpCommandRequest:
		return "command_request"
	case OpCommandResponse:
		return "command_response"
	default:
		return fmt.Sprintf("op(%d)", uint32(t))
	}
}

const (
	opTypeID      schema.FieldID = 1
	opRequestID   schema.FieldID = 2
	opEntityID    schema.FieldID = 3
	opComponentID schema.FieldID = 4
	opPayloadID   schema.FieldID = 5
)

// Op is one unit of traffic: which entity and component it concerns and the
// encoded payload. Command ops carry a request id so responses can be matched.
type Op struct {
	Type      OpType
	RequestID string
	Entity    schema.EntityID
	Component schema.ComponentID
	Payload   []byte
}

// ComponentValue is any generated component.
type ComponentValue interface {
	schema.ObjectField
	ComponentID() schema.ComponentID
}

func NewRequestID() string {
	return uuid.NewString()
}

func AddComponent(entity schema.EntityID, c ComponentValue) *Op {
	return &Op{
		Type:      OpAddComponent,
		Entity:    entity,
		Component: c.ComponentID(),
		Payload:   schema.SerializeData(c),
	}
}

func RemoveComponent(entity schema.EntityID, id schema.ComponentID) *Op {
	return &Op{Type: OpRemoveComponent, Entity: entity, Component: id}
}

func UpdateComponent(entity schema.EntityID, id schema.ComponentID, u schema.UpdateCodec) *Op {
	return &Op{
		Type:      OpComponentUpdate,
		Entity:    entity,
		Component: id,
		Payload:   schema.SerializeUpdate(u),
	}
}

// Request wraps a command request under a fresh request id.
func Request(entity schema.EntityID, id schema.ComponentID, r schema.Request) *Op {
	return &Op{
		Type:      OpCommandRequest,
		RequestID: NewRequestID(),
		Entity:    entity,
		Component: id,
		Payload:   schema.SerializeRequest(r),
	}
}

// CreateResponse answers a command request op.
func (op *Op) CreateResponse(r schema.Response) *Op {
	return &Op{
		Type:      OpCommandResponse,
		RequestID: op.RequestID,
		Entity:    op.Entity,
		Component: op.Component,
		Payload:   schema.SerializeResponse(r),
	}
}

// PendingOps converts flushed coalescer output into update ops.
func PendingOps(pending []schema.PendingUpdate) []*Op {
	ops := make([]*Op, 0, len(pending))
	for _, p := range pending {
		ops = append(ops, &Op{
			Type:      OpComponentUpdate,
			Entity:    p.Entity,
			Component: p.Component,
			Payload:   p.Update.Marshal(),
		})
	}
	return ops
}

func (op *Op) IsResponse() bool {
	return op.Type == OpCommandResponse
}

func (op *Op) IntoObject(o *schema.Object) {
	schema.Enum[OpType]().Add(o, opTypeID, op.Type)
	if op.RequestID != "" {
		schema.String.Add(o, opRequestID, op.RequestID)
	}
	schema.Entity.Add(o, opEntityID, op.Entity)
	schema.Uint32.Add(o, opComponentID, uint32(op.Component))
	if len(op.Payload) > 0 {
		schema.Bytes.Add(o, opPayloadID, op.Payload)
	}
}

func (op *Op) FromObject(o *schema.Object) error {
	var err error
	if op.Type, err = schema.Enum[OpType]().Get(o, opTypeID); err != nil {
		return schema.AtField(err, opTypeID)
	}
	requestID, err := schema.Optional(schema.String).Get(o, opRequestID)
	if err != nil {
		return schema.AtField(err, opRequestID)
	}
	op.RequestID = requestID.OrElse("")
	if op.Entity, err = schema.Entity.Get(o, opEntityID); err != nil {
		return schema.AtField(err, opEntityID)
	}
	component, err := schema.Uint32.Get(o, opComponentID)
	if err != nil {
		return schema.AtField(err, opComponentID)
	}
	op.Component = schema.ComponentID(component)
	payload, err := schema.Optional(schema.Bytes).Get(o, opPayloadID)
	if err != nil {
		return schema.AtField(err, opPayloadID)
	}
	op.Payload = payload.OrElse(nil)
	return nil
}

func (op *Op) Marshal() []byte {
	return schema.SerializeData(op)
}

func (op *Op) Unmarshal(b []byte) error {
	o, err := schema.Unmarshal(b)
	if err != nil {
		return err
	}
	return op.FromObject(o)
}

func (op *Op) reset() {
	*op = Op{}
}
