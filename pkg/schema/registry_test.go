package schema

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/schemagen/pkg/observability/log"
)

const testGaugeComponentID ComponentID = 3001

type testGauge struct {
	Level uint32
}

type testGaugeUpdate struct {
	Level Option[uint32]
}

func (g *testGauge) ComponentID() ComponentID { return testGaugeComponentID }

func (g *testGauge) IntoObject(o *Object) { Uint32.Add(o, 1, g.Level) }

func (g *testGauge) FromObject(o *Object) error {
	v, err := Uint32.Get(o, 1)
	if err != nil {
		return AtField(err, 1)
	}
	g.Level = v
	return nil
}

func (g *testGauge) MergeUpdate(u testGaugeUpdate) {
	if v, ok := u.Level.Get(); ok {
		g.Level = v
	}
}

func (u *testGaugeUpdate) IntoUpdate(cu *ComponentUpdate) {
	WriteUpdate(cu, 1, Uint32, u.Level)
}

func (u *testGaugeUpdate) FromUpdate(cu *ComponentUpdate) error {
	v, err := ReadUpdate(cu, 1, Uint32, func() uint32 { return 0 })
	if err != nil {
		return err
	}
	u.Level = v
	return nil
}

func (u *testGaugeUpdate) Merge(other testGaugeUpdate) {
	if other.Level.IsSome() {
		u.Level = other.Level
	}
}

type testGaugeRequest struct{ Index CommandIndex }

func decodeTestGaugeRequest(r *CommandRequest) (testGaugeRequest, error) {
	if r.Index != 1 {
		return testGaugeRequest{}, UnknownCommand[testGaugeRequest](r.Index)
	}
	return testGaugeRequest{Index: r.Index}, nil
}

func decodeTestGaugeResponse(r *CommandResponse) (testGaugeRequest, error) {
	return testGaugeRequest{Index: r.Index}, nil
}

func TestNewVTable(t *testing.T) {
	vt := NewVTable[testGauge, testGaugeUpdate]("Gauge")
	assert.Equal(t, testGaugeComponentID, vt.ID)
	assert.Nil(t, vt.DecodeRequest)

	o := NewObject()
	(&testGauge{Level: 4}).IntoObject(o)
	data, err := vt.DecodeData(o)
	require.NoError(t, err)
	assert.Equal(t, testGauge{Level: 4}, data)

	cu := NewComponentUpdate()
	(&testGaugeUpdate{Level: Some[uint32](9)}).IntoUpdate(cu)
	update, err := vt.DecodeUpdate(cu)
	require.NoError(t, err)
	assert.Equal(t, testGaugeUpdate{Level: Some[uint32](9)}, update)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(WithLogger(log.NewNop()))
	vt := WithCommands(NewVTable[testGauge, testGaugeUpdate]("Gauge"), decodeTestGaugeRequest, decodeTestGaugeResponse)

	require.NoError(t, r.Register(vt))
	err := r.Register(vt)
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
	assert.Equal(t, ErrorCodeAlreadyRegistered, GetErrorCode(err))
	assert.Equal(t, []ComponentID{testGaugeComponentID}, r.IDs())
	assert.Equal(t, 1, r.Len())

	_, err = r.DecodeData(42, NewObject())
	assert.True(t, errors.Is(err, ErrNotRegistered))

	req, err := r.DecodeRequest(testGaugeComponentID, NewCommandRequest(1))
	require.NoError(t, err)
	assert.Equal(t, testGaugeRequest{Index: 1}, req)

	_, err = r.DecodeRequest(testGaugeComponentID, NewCommandRequest(99))
	require.Error(t, err)
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ErrorCodeUnknownCommand, se.Code)
	assert.Equal(t, uint64(99), se.Value)
	assert.Equal(t, "testGaugeRequest", se.TypeName)

	resp, err := r.DecodeResponse(testGaugeComponentID, NewCommandResponse(1))
	require.NoError(t, err)
	assert.Equal(t, testGaugeRequest{Index: 1}, resp)
}

func TestRegistryWithoutCommands(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewVTable[testGauge, testGaugeUpdate]("Gauge"))

	_, err := r.DecodeRequest(testGaugeComponentID, NewCommandRequest(1))
	assert.True(t, errors.Is(err, ErrNoCommands))
	assert.Panics(t, func() { r.MustRegister(NewVTable[testGauge, testGaugeUpdate]("Gauge")) })
}

func TestRegistryConcurrentLookup(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewVTable[testGauge, testGaugeUpdate]("Gauge"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := r.Lookup(testGaugeComponentID)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}

func TestSerializeDataAndUpdate(t *testing.T) {
	b := SerializeData(&testGauge{Level: 12})
	g, err := DeserializeData[testGauge](b)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), g.Level)

	ub := SerializeUpdate(&testGaugeUpdate{Level: Some[uint32](1)})
	u, err := DeserializeUpdate[testGaugeUpdate](ub)
	require.NoError(t, err)
	assert.Equal(t, Some[uint32](1), u.Level)

	_, err = DeserializeData[testGauge](nil)
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestMergeUpdateMatchesSequentialApply(t *testing.T) {
	u1 := testGaugeUpdate{Level: Some[uint32](1)}
	u2 := testGaugeUpdate{}
	u3 := testGaugeUpdate{Level: Some[uint32](3)}

	sequential := testGauge{}
	for _, u := range []testGaugeUpdate{u1, u2, u3} {
		sequential.MergeUpdate(u)
	}

	merged := u1
	merged.Merge(u2)
	merged.Merge(u3)
	folded := testGauge{}
	folded.MergeUpdate(merged)

	assert.Equal(t, sequential, folded)
	assert.Equal(t, uint32(3), folded.Level)
}
