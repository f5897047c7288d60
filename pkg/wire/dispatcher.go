package wire

import (
	"context"
	"fmt"
	"sync"

	"github.com/zeusync/schemagen/pkg/generic"
	"github.com/zeusync/schemagen/pkg/observability/log"
	"github.com/zeusync/schemagen/pkg/schema"
)

// Message is a decoded Op. Value holds the generated Go value: component data,
// an update, or a command request or response union. It is nil for removals.
type Message struct {
	Type      OpType
	RequestID string
	Entity    schema.EntityID
	Component schema.ComponentID
	Value     any
}

type HandlerFunc func(ctx context.Context, msg Message) error

// Dispatcher decodes ops through a registry and routes them to handlers by op type.
type Dispatcher struct {
	registry *schema.Registry
	logger   log.Log

	mu       sync.RWMutex
	handlers map[OpType]HandlerFunc

	ops *generic.Pool[*Op]
}

func NewDispatcher(registry *schema.Registry, logger log.Log) *Dispatcher {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Dispatcher{
		registry: registry,
		logger:   logger.Named("dispatcher"),
		handlers: make(map[OpType]HandlerFunc),
		ops:      generic.NewPool(func() *Op { return &Op{} }, (*Op).reset),
	}
}

// Handle sets the handler for t, replacing any previous one.
func (d *Dispatcher) Handle(t OpType, h HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[t] = h
}

// Decode parses an encoded Op and decodes its payload with the registry.
func (d *Dispatcher) Decode(b []byte) (Message, error) {
	op := d.ops.Get()
	defer d.ops.Put(op)

	if err := op.Unmarshal(b); err != nil {
		return Message{}, fmt.Errorf("decode op: %w", err)
	}

	msg := Message{
		Type:      op.Type,
		RequestID: op.RequestID,
		Entity:    op.Entity,
		Component: op.Component,
	}

	var err error
	switch op.Type {
	case OpAddComponent:
		var o *schema.Object
		if o, err = schema.Unmarshal(op.Payload); err == nil {
			msg.Value, err = d.registry.DecodeData(op.Component, o)
		}
	case OpComponentUpdate:
		cu := schema.NewComponentUpdate()
		if err = cu.Unmarshal(op.Payload); err == nil {
			msg.Value, err = d.registry.DecodeUpdate(op.Component, cu)
		}
	case OpCommandRequest:
		var req schema.CommandRequest
		if err = req.Unmarshal(op.Payload); err == nil {
			msg.Value, err = d.registry.DecodeRequest(op.Component, &req)
		}
	case OpCommandResponse:
		var resp schema.CommandResponse
		if err = resp.Unmarshal(op.Payload); err == nil {
			msg.Value, err = d.registry.DecodeResponse(op.Component, &resp)
		}
	case OpRemoveComponent:
	}
	if err != nil {
		return Message{}, fmt.Errorf("decode %s for component %d: %w", op.Type, op.Component, err)
	}
	return msg, nil
}

// Dispatch decodes b and calls the handler registered for its op type. Ops
// without a handler are dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, b []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := d.Decode(b)
	if err != nil {
		d.logger.Warn("failed to decode op",
			log.Error(err),
			log.String("path", schema.ErrorPath(err)),
			log.Int("code", int(schema.GetErrorCode(err))),
		)
		return err
	}

	d.mu.RLock()
	h, ok := d.handlers[msg.Type]
	d.mu.RUnlock()
	if !ok {
		d.logger.Debug("no handler for op",
			log.String("type", msg.Type.String()),
			log.Uint32("component_id", uint32(msg.Component)),
		)
		return nil
	}
	return h(ctx, msg)
}
