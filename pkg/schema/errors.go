package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrUnknownDiscriminant = errors.New("unknown discriminant")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrMissingField        = errors.New("missing field")
	ErrIndexOutOfBounds    = errors.New("index out of bounds")
	ErrInvalidValue        = errors.New("invalid value")
	ErrSchema              = errors.New("schema error")

	// Registry errors

	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered")
	ErrNoCommands        = errors.New("component has no commands")
)

// ErrorCode represents a numeric error code for efficient error handling
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = 0

	ErrorCodeUnknownDiscriminant ErrorCode = 1001
	ErrorCodeUnknownCommand      ErrorCode = 1002
	ErrorCodeMissingField        ErrorCode = 1003
	ErrorCodeIndexOutOfBounds    ErrorCode = 1004
	ErrorCodeInvalidValue        ErrorCode = 1005
	ErrorCodeSchema              ErrorCode = 1006

	ErrorCodeAlreadyRegistered ErrorCode = 2001
	ErrorCodeNotRegistered     ErrorCode = 2002
	ErrorCodeNoCommands        ErrorCode = 2003
)

// Error is returned by every decode path. Which fields are meaningful depends on Code:
//
//	UnknownDiscriminant  Value, TypeName
//	UnknownCommand       Value (the command index), TypeName
//	MissingField         Field
//	IndexOutOfBounds     Index, Count
//	InvalidValue         Field, or Index when Field is zero; Cause holds the inner error
//	Schema               Message, Cause
type Error struct {
	Code     ErrorCode
	Message  string
	TypeName string
	Value    uint64
	Field    FieldID
	Index    int
	Count    int
	Cause    error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrorCodeUnknownDiscriminant:
		return fmt.Sprintf("unknown discriminant %d for %s", e.Value, e.TypeName)
	case ErrorCodeUnknownCommand:
		return fmt.Sprintf("unknown command index %d for %s", e.Value, e.TypeName)
	case ErrorCodeMissingField:
		return fmt.Sprintf("missing field %d", e.Field)
	case ErrorCodeIndexOutOfBounds:
		return fmt.Sprintf("index %d out of bounds (count %d)", e.Index, e.Count)
	case ErrorCodeInvalidValue:
		if cause := rootCause(e); cause != nil {
			return fmt.Sprintf("invalid value at %s: %v", e.Path(), cause)
		}
		return "invalid value at " + e.Path()
	default:
		msg := "schema error"
		if e.Message != "" {
			msg += ": " + e.Message
		}
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		return msg
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel for the error's code, so errors.Is(err, ErrMissingField)
// works through any number of AtField/AtIndex wrappers.
func (e *Error) Is(target error) bool {
	return target == sentinels[e.Code]
}

// Path renders the location of an InvalidValue chain, e.g. "/3[2]/1".
func (e *Error) Path() string {
	var sb strings.Builder
	var cur error = e
	for {
		var se *Error
		if !errors.As(cur, &se) || se.Code != ErrorCodeInvalidValue {
			break
		}
		if se.Field != 0 {
			fmt.Fprintf(&sb, "/%d", se.Field)
		} else {
			fmt.Fprintf(&sb, "[%d]", se.Index)
		}
		cur = se.Cause
	}
	if sb.Len() == 0 {
		return "/"
	}
	return sb.String()
}

var sentinels = map[ErrorCode]error{
	ErrorCodeUnknownDiscriminant: ErrUnknownDiscriminant,
	ErrorCodeUnknownCommand:      ErrUnknownCommand,
	ErrorCodeMissingField:        ErrMissingField,
	ErrorCodeIndexOutOfBounds:    ErrIndexOutOfBounds,
	ErrorCodeInvalidValue:        ErrInvalidValue,
	ErrorCodeSchema:              ErrSchema,
	ErrorCodeAlreadyRegistered:   ErrAlreadyRegistered,
	ErrorCodeNotRegistered:       ErrNotRegistered,
	ErrorCodeNoCommands:          ErrNoCommands,
}

func rootCause(e *Error) error {
	var cur error = e
	for {
		var se *Error
		if !errors.As(cur, &se) || se.Code != ErrorCodeInvalidValue {
			return cur
		}
		if se.Cause == nil {
			return nil
		}
		cur = se.Cause
	}
}

func NewUnknownDiscriminant(value uint64, typeName string) *Error {
	return &Error{Code: ErrorCodeUnknownDiscriminant, Value: value, TypeName: typeName}
}

func NewUnknownCommand(index CommandIndex, typeName string) *Error {
	return &Error{Code: ErrorCodeUnknownCommand, Value: uint64(index), TypeName: typeName}
}

// UnknownCommand reports a command index that has no variant in the union T.
func UnknownCommand[T any](index CommandIndex) error {
	return NewUnknownCommand(index, typeName[T]())
}

func NewMissingField(id FieldID) *Error {
	return &Error{Code: ErrorCodeMissingField, Field: id}
}

func NewIndexOutOfBounds(index, count int) *Error {
	return &Error{Code: ErrorCodeIndexOutOfBounds, Index: index, Count: count}
}

func NewSchemaError(message string, cause error) *Error {
	return &Error{Code: ErrorCodeSchema, Message: message, Cause: cause}
}

// AtField records that err happened while decoding field id. A nil err stays nil.
func AtField(err error, id FieldID) error {
	if err == nil {
		return nil
	}
	return &Error{Code: ErrorCodeInvalidValue, Field: id, Cause: err}
}

// AtIndex records that err happened while decoding element i of a list or map.
func AtIndex(err error, i int) error {
	if err == nil {
		return nil
	}
	return &Error{Code: ErrorCodeInvalidValue, Index: i, Cause: err}
}

// GetErrorCode returns the code of the outermost *Error in err's chain.
func GetErrorCode(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	for code, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ErrorCodeUnknown
}

// ErrorPath returns the field path of err, or "" when err carries none.
func ErrorPath(err error) string {
	var se *Error
	if !errors.As(err, &se) || se.Code != ErrorCodeInvalidValue {
		return ""
	}
	return se.Path()
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
