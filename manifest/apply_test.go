package manifest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fcodego/registry"
)

func TestApply(t *testing.T) {
	model := &Model{Codes: []*Code{
		{Code: "user.created", TypeName: "billing.UserCreated", Legacy: []string{"uc.v1"}, FSInformation: NewFSInfo("a.hcl")},
		{Code: "user.deleted", TypeName: "billing.UserDeleted", FSInformation: NewFSInfo("a.hcl")},
	}}

	r := registry.New[string]()
	require.NoError(t, model.Apply(context.Background(), r))

	typeName, err := r.Resolve("uc.v1")
	require.NoError(t, err)
	assert.Equal(t, "billing.UserCreated", typeName)

	groups := r.CodeGroups(nil)
	assert.Equal(t, [][]string{
		{"user.created", "uc.v1"},
		{"user.deleted"},
	}, groups)
}

func TestApply_DuplicateReportsDeclaringFile(t *testing.T) {
	model := &Model{Codes: []*Code{
		{Code: "dup", TypeName: "a.Type", FSInformation: NewFSInfo("first.hcl")},
		{Code: "dup", TypeName: "b.Type", FSInformation: NewFSInfo("second.yaml")},
	}}

	r := registry.New[string]()
	err := model.Apply(context.Background(), r)
	require.ErrorIs(t, err, registry.ErrDuplicateActiveCode)
	assert.Contains(t, err.Error(), "second.yaml")
}

func TestApply_SurvivesDirectTeardown(t *testing.T) {
	model := &Model{Codes: []*Code{
		{Code: "kept", TypeName: "a.Type", FSInformation: NewFSInfo("a.hcl")},
	}}

	r := registry.New[string]()
	require.NoError(t, r.Register("scratch", "test.Type"))
	require.NoError(t, model.Apply(context.Background(), r))

	// Manifest codes go through the definition path, so clearing direct
	// registrations leaves them in place.
	require.True(t, r.ClearDirect())
	_, ok := r.Lookup("kept")
	assert.True(t, ok)
	_, ok = r.Lookup("scratch")
	assert.False(t, ok)
}
