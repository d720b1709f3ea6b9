package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_ZeroValueIsAbsent(t *testing.T) {
	var o Option[int]

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.False(t, o.IsPresent())
	assert.Equal(t, None[int](), o)
}

func TestOption_Some(t *testing.T) {
	o := Some("ls")

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "ls", v)
	assert.True(t, o.IsPresent())
}

func TestOption_SomeOfZeroValueIsPresent(t *testing.T) {
	o := Some(0)

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestOption_NilSliceIsPresent(t *testing.T) {
	var args []string
	o := Some(args)

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestOption_OrElse(t *testing.T) {
	assert.Equal(t, 7, None[int]().OrElse(7))
	assert.Equal(t, 3, Some(3).OrElse(7))
}

func TestOption_String(t *testing.T) {
	assert.Equal(t, "None", None[string]().String())
	assert.Equal(t, "Some(ls)", Some("ls").String())
	assert.Equal(t, "Some([a b])", Some([]string{"a", "b"}).String())
}
