package schema

// Component is implemented by generated component types. U is the matching
// update type.
type Component[U any] interface {
	ObjectField
	ComponentID() ComponentID
	// MergeUpdate overwrites every field the update carries. Events are not
	// part of the component state and are ignored.
	MergeUpdate(update U)
}

// UpdateCodec converts a typed update to and from its raw form.
type UpdateCodec interface {
	IntoUpdate(cu *ComponentUpdate)
	FromUpdate(cu *ComponentUpdate) error
}

// Update is implemented by generated update types.
type Update[U any] interface {
	UpdateCodec
	// Merge folds a later update into this one: fields set in other win,
	// events are appended.
	Merge(other U)
}

// ComponentData is the untyped state of one component instance.
type ComponentData struct {
	fields *Object
}

func NewComponentData() *ComponentData {
	return &ComponentData{fields: NewObject()}
}

// ComponentDataFrom wraps an existing object without copying it.
func ComponentDataFrom(o *Object) *ComponentData {
	return &ComponentData{fields: o}
}

func (d *ComponentData) Fields() *Object {
	return d.fields
}

// ApplyUpdate merges u into the data: fields present in u replace the stored
// occurrences and cleared fields are removed. Generated records decode a
// removed singular field as its default, matching the typed merge.
func (d *ComponentData) ApplyUpdate(u *ComponentUpdate) {
	u.ensure()
	for _, id := range u.fields.FieldIDs() {
		d.fields.Replace(id, u.fields)
	}
	for id := range u.cleared {
		if !u.fields.Has(id) {
			d.fields.Remove(id)
		}
	}
}

func (d *ComponentData) Clone() *ComponentData {
	return &ComponentData{fields: d.fields.Clone()}
}

func (d *ComponentData) Marshal() []byte {
	return d.fields.Marshal()
}

func (d *ComponentData) Unmarshal(b []byte) error {
	o, err := Unmarshal(b)
	if err != nil {
		return err
	}
	d.fields = o
	return nil
}

// SerializeData encodes a typed record or component.
func SerializeData(v ObjectField) []byte {
	o := NewObject()
	v.IntoObject(o)
	return o.Marshal()
}

// DeserializeData decodes bytes produced by SerializeData.
func DeserializeData[T any, PT interface {
	*T
	ObjectField
}](b []byte) (T, error) {
	var v T
	o, err := Unmarshal(b)
	if err != nil {
		return v, err
	}
	if err := PT(&v).FromObject(o); err != nil {
		return v, err
	}
	return v, nil
}
