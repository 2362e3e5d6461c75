package registry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type animal interface {
	Speak() string
}

type dog struct{}

func (dog) Speak() string { return "woof" }

type cat struct{}

func (cat) Speak() string { return "meow" }

// rock is registered but is not an animal.
type rock struct{}

func TestDefType_RoundTrip(t *testing.T) {
	r := New[reflect.Type]()

	dogType, err := DefType[dog](r, "D1", "D0")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(dog{}), dogType)

	byActive, err := r.Resolve("D1")
	require.NoError(t, err)
	assert.Equal(t, dogType, byActive)

	byLegacy, err := r.Resolve("D0")
	require.NoError(t, err)
	assert.Equal(t, dogType, byLegacy)

	code, err := r.ActiveCode(dogType)
	require.NoError(t, err)
	assert.Equal(t, "D1", code)

	codes, err := r.AllCodes(dogType)
	require.NoError(t, err)
	assert.Equal(t, []string{"D1", "D0"}, codes)
}

func TestDefType_IsDefinitionPath(t *testing.T) {
	r := New[reflect.Type]()

	_, err := DefType[dog](r, "D1")
	require.NoError(t, err)

	// Definition-time registrations survive direct-code teardown.
	require.True(t, r.ClearDirect())
	_, ok := r.Lookup("D1")
	assert.True(t, ok)
}

func TestMustDefType_PanicsOnConflict(t *testing.T) {
	r := New[reflect.Type]()

	assert.NotPanics(t, func() { MustDefType[dog](r, "D1") })
	assert.Panics(t, func() { MustDefType[cat](r, "D1") })
}

func TestSubtypesOf_Interface(t *testing.T) {
	r := New[reflect.Type]()

	MustDefType[dog](r, "D1", "D0")
	MustDefType[cat](r, "C1")
	MustDefType[rock](r, "R1")

	groups := r.CodeGroups(SubtypesOf[animal]())
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"D1", "D0"}, groups[0])
	assert.Equal(t, []string{"C1"}, groups[1])
}

func TestSubtypesOf_ConcreteBase(t *testing.T) {
	pred := SubtypesOf[dog]()
	assert.True(t, pred(reflect.TypeOf(dog{})))
	assert.False(t, pred(reflect.TypeOf(cat{})))
	assert.False(t, pred(nil))
}
