package schema

import (
	"fmt"
	"slices"
	"sync"

	"github.com/zeusync/schemagen/pkg/observability/log"
)

// VTable is the type-erased entry for one component: decoders that turn raw
// buffers into the generated Go values.
type VTable struct {
	ID   ComponentID
	Name string

	DecodeData   func(o *Object) (any, error)
	DecodeUpdate func(cu *ComponentUpdate) (any, error)

	// Nil when the component declares no commands.
	DecodeRequest  func(r *CommandRequest) (any, error)
	DecodeResponse func(r *CommandResponse) (any, error)
}

// NewVTable builds the data and update decoders for component T with update U.
// The type parameters after U are inferred: NewVTable[Position, PositionUpdate]("Position").
func NewVTable[T, U any, PT interface {
	*T
	Component[U]
}, PU interface {
	*U
	Update[U]
}](name string) VTable {
	var zero T
	return VTable{
		ID:   PT(&zero).ComponentID(),
		Name: name,
		DecodeData: func(o *Object) (any, error) {
			var v T
			if err := PT(&v).FromObject(o); err != nil {
				return nil, err
			}
			return v, nil
		},
		DecodeUpdate: func(cu *ComponentUpdate) (any, error) {
			var u U
			if err := PU(&u).FromUpdate(cu); err != nil {
				return nil, err
			}
			return u, nil
		},
	}
}

// WithCommands attaches the generated command decoders to vt.
func WithCommands[Req, Resp any](vt VTable, decodeRequest func(*CommandRequest) (Req, error), decodeResponse func(*CommandResponse) (Resp, error)) VTable {
	vt.DecodeRequest = func(r *CommandRequest) (any, error) {
		return decodeRequest(r)
	}
	vt.DecodeResponse = func(r *CommandResponse) (any, error) {
		return decodeResponse(r)
	}
	return vt
}

type RegistryOption func(*Registry)

func WithLogger(logger log.Log) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry maps component ids to their VTables. Applications build one
// explicitly, usually through the generated RegisterComponents function.
type Registry struct {
	mu     sync.RWMutex
	tables map[ComponentID]VTable
	logger log.Log
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		tables: make(map[ComponentID]VTable),
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Register(vt VTable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.tables[vt.ID]; ok {
		return fmt.Errorf("component %d (%s) conflicts with %s: %w", vt.ID, vt.Name, existing.Name, ErrAlreadyRegistered)
	}
	r.tables[vt.ID] = vt
	r.logger.Debug("component registered",
		log.Uint32("component_id", uint32(vt.ID)),
		log.String("name", vt.Name),
		log.Bool("commands", vt.DecodeRequest != nil),
	)
	return nil
}

// MustRegister panics when vt cannot be registered.
func (r *Registry) MustRegister(vt VTable) {
	if err := r.Register(vt); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(id ComponentID) (VTable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vt, ok := r.tables[id]
	return vt, ok
}

// IDs returns the registered component ids in ascending order.
func (r *Registry) IDs() []ComponentID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]ComponentID, 0, len(r.tables))
	for id := range r.tables {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

func (r *Registry) lookup(id ComponentID) (VTable, error) {
	vt, ok := r.Lookup(id)
	if !ok {
		return VTable{}, fmt.Errorf("component %d: %w", id, ErrNotRegistered)
	}
	return vt, nil
}

func (r *Registry) DecodeData(id ComponentID, o *Object) (any, error) {
	vt, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return vt.DecodeData(o)
}

func (r *Registry) DecodeUpdate(id ComponentID, cu *ComponentUpdate) (any, error) {
	vt, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return vt.DecodeUpdate(cu)
}

func (r *Registry) DecodeRequest(id ComponentID, req *CommandRequest) (any, error) {
	vt, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	if vt.DecodeRequest == nil {
		return nil, fmt.Errorf("component %d (%s): %w", id, vt.Name, ErrNoCommands)
	}
	return vt.DecodeRequest(req)
}

func (r *Registry) DecodeResponse(id ComponentID, resp *CommandResponse) (any, error) {
	vt, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	if vt.DecodeResponse == nil {
		return nil, fmt.Errorf("component %d (%s): %w", id, vt.Name, ErrNoCommands)
	}
	return vt.DecodeResponse(resp)
}
