package schema

// CommandRequest is the raw form of a command request: the command index
// within its component and the request payload.
type CommandRequest struct {
	Index   CommandIndex
	Payload *Object
}

func NewCommandRequest(index CommandIndex) *CommandRequest {
	return &CommandRequest{Index: index, Payload: NewObject()}
}

func (r *CommandRequest) Marshal() []byte {
	return marshalCommand(r.Index, r.Payload)
}

func (r *CommandRequest) Unmarshal(b []byte) error {
	index, payload, err := unmarshalCommand(b)
	if err != nil {
		return err
	}
	r.Index, r.Payload = index, payload
	return nil
}

// CommandResponse mirrors CommandRequest for the response direction.
type CommandResponse struct {
	Index   CommandIndex
	Payload *Object
}

func NewCommandResponse(index CommandIndex) *CommandResponse {
	return &CommandResponse{Index: index, Payload: NewObject()}
}

func (r *CommandResponse) Marshal() []byte {
	return marshalCommand(r.Index, r.Payload)
}

func (r *CommandResponse) Unmarshal(b []byte) error {
	index, payload, err := unmarshalCommand(b)
	if err != nil {
		return err
	}
	r.Index, r.Payload = index, payload
	return nil
}

func marshalCommand(index CommandIndex, payload *Object) []byte {
	envelope := NewObject()
	Uint32.Add(envelope, commandIndexID, uint32(index))
	if payload != nil && !payload.IsEmpty() {
		envelope.AppendObject(commandPayloadID, payload)
	}
	return envelope.Marshal()
}

func unmarshalCommand(b []byte) (CommandIndex, *Object, error) {
	envelope, err := Unmarshal(b)
	if err != nil {
		return 0, nil, err
	}
	index, err := Uint32.Get(envelope, commandIndexID)
	if err != nil {
		return 0, nil, AtField(err, commandIndexID)
	}
	payload, err := envelope.GetObject(commandPayloadID)
	if err != nil {
		return 0, nil, AtField(err, commandPayloadID)
	}
	return CommandIndex(index), payload, nil
}

// Request is implemented by every generated command request variant.
type Request interface {
	CommandIndex() CommandIndex
	IntoRequest() *CommandRequest
}

// Response is implemented by every generated command response variant.
type Response interface {
	CommandIndex() CommandIndex
	IntoResponse() *CommandResponse
}

func SerializeRequest(r Request) []byte {
	return r.IntoRequest().Marshal()
}

// DeserializeRequest decodes a request with the component's generated decoder.
func DeserializeRequest[T any](b []byte, decode func(*CommandRequest) (T, error)) (T, error) {
	var req CommandRequest
	if err := req.Unmarshal(b); err != nil {
		var zero T
		return zero, err
	}
	return decode(&req)
}

func SerializeResponse(r Response) []byte {
	return r.IntoResponse().Marshal()
}

func DeserializeResponse[T any](b []byte, decode func(*CommandResponse) (T, error)) (T, error) {
	var resp CommandResponse
	if err := resp.Unmarshal(b); err != nil {
		var zero T
		return zero, err
	}
	return decode(&resp)
}
