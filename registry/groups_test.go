package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGroups_OrderAndShape(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Register("b1", "zoo.Bear", "b0"))
	require.NoError(t, r.Register("d1", "zoo.Dog"))
	require.NoError(t, r.Register("t1", "tools.Hammer", "t0", "hmr"))

	groups := r.CodeGroups(nil)
	require.Len(t, groups, 3)
	// Groups follow active-code registration order, each headed by the
	// active code with legacy codes trailing in registration order.
	assert.Equal(t, [][]string{
		{"b1", "b0"},
		{"d1"},
		{"t1", "t0", "hmr"},
	}, groups)
}

func TestCodeGroups_Filtered(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Register("b1", "zoo.Bear"))
	require.NoError(t, r.Register("t1", "tools.Hammer"))
	require.NoError(t, r.Register("d1", "zoo.Dog", "d0"))

	zooOnly := func(typeName string) bool { return strings.HasPrefix(typeName, "zoo.") }
	groups := r.CodeGroups(zooOnly)
	assert.Equal(t, [][]string{
		{"b1"},
		{"d1", "d0"},
	}, groups)
}

func TestCodeGroups_Empty(t *testing.T) {
	r := New[string]()
	assert.Empty(t, r.CodeGroups(nil))

	require.NoError(t, r.Register("a", "a.Type"))
	nothing := func(string) bool { return false }
	assert.Empty(t, r.CodeGroups(nothing))
}

func TestCodeGroups_RemovalShrinksGroups(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Register("d1", "zoo.Dog", "d0"))

	require.True(t, r.Remove("d0"))
	assert.Equal(t, [][]string{{"d1"}}, r.CodeGroups(nil))

	require.True(t, r.Remove("d1"))
	assert.Empty(t, r.CodeGroups(nil))
}
