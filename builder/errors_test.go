package builder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotSet_Message(t *testing.T) {
	err := NotSet("Command", "Env")
	require.Error(t, err)
	assert.Equal(t, "Env is not set", err.Error())
}

func TestNotSet_IsErrNotSet(t *testing.T) {
	err := NotSet("Command", "Env")
	assert.ErrorIs(t, err, ErrNotSet)

	wrapped := fmt.Errorf("building command: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotSet)
	assert.False(t, errors.Is(errors.New("Env is not set"), ErrNotSet))
}

func TestNotSet_As(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NotSet("Command", "CurrentDir"))

	var mfe *MissingFieldError
	require.ErrorAs(t, wrapped, &mfe)
	assert.Equal(t, "Command", mfe.Record)
	assert.Equal(t, "CurrentDir", mfe.Field)
}

func TestFieldName(t *testing.T) {
	field, ok := FieldName(fmt.Errorf("outer: %w", NotSet("Command", "Args")))
	assert.True(t, ok)
	assert.Equal(t, "Args", field)

	field, ok = FieldName(errors.New("something else"))
	assert.False(t, ok)
	assert.Empty(t, field)

	_, ok = FieldName(nil)
	assert.False(t, ok)
}
