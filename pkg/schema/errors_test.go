package schema

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPathRendering(t *testing.T) {
	err := AtField(AtIndex(AtField(NewIndexOutOfBounds(4, 2), 1), 2), 3)

	assert.Equal(t, "/3[2]/1", ErrorPath(err))
	assert.Equal(t, "invalid value at /3[2]/1: index 4 out of bounds (count 2)", err.Error())
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.False(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, ErrorCodeInvalidValue, GetErrorCode(err))
}

func TestAtFieldKeepsNil(t *testing.T) {
	assert.NoError(t, AtField(nil, 1))
	assert.NoError(t, AtIndex(nil, 0))
}

func TestErrorPathThroughWrapping(t *testing.T) {
	err := fmt.Errorf("decode position: %w", AtField(NewMissingField(1), 4))
	assert.Equal(t, "/4", ErrorPath(err))
	assert.Equal(t, "", ErrorPath(NewMissingField(1)))
	assert.Equal(t, "", ErrorPath(errors.New("plain")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "unknown discriminant 9 for Color", NewUnknownDiscriminant(9, "Color").Error())
	assert.Equal(t, "schema error: bad tag", NewSchemaError("bad tag", nil).Error())
	assert.Equal(t, "invalid value at /2", (&Error{Code: ErrorCodeInvalidValue, Field: 2}).Error())
	assert.Equal(t, ErrorCodeUnknown, GetErrorCode(errors.New("plain")))
}
