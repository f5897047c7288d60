package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRequestRoundTrip(t *testing.T) {
	req := NewCommandRequest(3)
	String.Add(req.Payload, 1, "ping")

	var decoded CommandRequest
	require.NoError(t, decoded.Unmarshal(req.Marshal()))
	assert.Equal(t, CommandIndex(3), decoded.Index)
	v, err := String.Get(decoded.Payload, 1)
	require.NoError(t, err)
	assert.Equal(t, "ping", v)
}

func TestCommandResponseEmptyPayload(t *testing.T) {
	resp := NewCommandResponse(1)

	var decoded CommandResponse
	require.NoError(t, decoded.Unmarshal(resp.Marshal()))
	assert.Equal(t, CommandIndex(1), decoded.Index)
	require.NotNil(t, decoded.Payload)
	assert.True(t, decoded.Payload.IsEmpty())
}

func TestCommandMissingIndex(t *testing.T) {
	var decoded CommandRequest
	err := decoded.Unmarshal(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
}

type testPing struct{ Seq uint32 }

func (p testPing) CommandIndex() CommandIndex { return 1 }

func (p testPing) IntoRequest() *CommandRequest {
	req := NewCommandRequest(p.CommandIndex())
	Uint32.Add(req.Payload, 1, p.Seq)
	return req
}

func (p testPing) IntoResponse() *CommandResponse {
	resp := NewCommandResponse(p.CommandIndex())
	Uint32.Add(resp.Payload, 1, p.Seq)
	return resp
}

func TestSerializeRequestAndResponse(t *testing.T) {
	decodeReq := func(r *CommandRequest) (testPing, error) {
		if r.Index != 1 {
			return testPing{}, UnknownCommand[testPing](r.Index)
		}
		seq, err := Uint32.Get(r.Payload, 1)
		return testPing{Seq: seq}, AtField(err, 1)
	}

	got, err := DeserializeRequest(SerializeRequest(testPing{Seq: 5}), decodeReq)
	require.NoError(t, err)
	assert.Equal(t, testPing{Seq: 5}, got)

	bad := NewCommandRequest(99).Marshal()
	_, err = DeserializeRequest(bad, decodeReq)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Equal(t, "unknown command index 99 for testPing", err.Error())

	decodeResp := func(r *CommandResponse) (uint32, error) { return Uint32.Get(r.Payload, 1) }
	seq, err := DeserializeResponse(SerializeResponse(testPing{Seq: 8}), decodeResp)
	require.NoError(t, err)
	assert.Equal(t, uint32(8), seq)
}
