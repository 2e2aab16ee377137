package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgument_Defaults(t *testing.T) {
	a := NewArgument("verbose")

	assert.Equal(t, "verbose", a.Name())
	assert.Equal(t, rune(0), a.Short())
	assert.Equal(t, "", a.Long())
	assert.True(t, a.IsOption())
	assert.False(t, a.IsExpectingValue())
	assert.False(t, a.IsRequired())
	assert.False(t, a.IsGiven())

	_, ok := a.Value()
	assert.False(t, ok)
}

func TestArgument_Chaining(t *testing.T) {
	a := WithName("file").SetShort('f').SetLong("file").SetDesc("Input file").ExpectsValue().Required()

	assert.Equal(t, 'f', a.Short())
	assert.Equal(t, "file", a.Long())
	assert.Equal(t, "Input file", a.Desc())
	assert.True(t, a.IsExpectingValue())
	assert.True(t, a.IsRequired())
}

func TestArgument_ExpectsValueIsNeverOption(t *testing.T) {
	a := NewArgument("name").SetGiven(true).ExpectsValue()
	assert.False(t, a.IsOption())

	// Calling it twice keeps the invariant.
	a.ExpectsValue()
	assert.False(t, a.IsOption())
}

func TestArgument_ValueRoundTrip(t *testing.T) {
	a := NewArgument("name").SetValue("foo")

	v, ok := a.Value()
	assert.True(t, ok)
	assert.Equal(t, "foo", v)
}

func TestArgument_EmptyValueIsAbsent(t *testing.T) {
	a := NewArgument("name").SetValue("foo").SetValue("")

	v, ok := a.Value()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}
