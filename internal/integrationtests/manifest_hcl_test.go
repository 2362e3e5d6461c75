package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fcodego/internal/testutil"
)

func TestHCLManifest_BuildsCodeTable(t *testing.T) {
	manifestHCL := `
		code "user.created" {
			type   = "billing.UserCreated"
			legacy = ["user_created", "uc.v1"]
		}

		code "user.deleted" {
			type = "billing.UserDeleted"
		}
	`
	result := testutil.RunIntegrationTest(t, map[string]string{
		"codes/main.hcl": manifestHCL,
	})

	require.NoError(t, result.Err)
	require.NotNil(t, result.App)

	reg := result.App.Registry()
	typeName, err := reg.Resolve("uc.v1")
	require.NoError(t, err)
	assert.Equal(t, "billing.UserCreated", typeName)

	codes, err := reg.AllCodes("billing.UserCreated")
	require.NoError(t, err)
	assert.Equal(t, []string{"user.created", "user_created", "uc.v1"}, codes)

	// The text report lists the active code with its legacy trail.
	assert.Contains(t, result.Output, "user.created  (billing.UserCreated)  legacy: user_created, uc.v1")
	assert.Contains(t, result.Output, "user.deleted  (billing.UserDeleted)")
}

func TestHCLManifest_SyntaxErrorIsRecovered(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{
		"codes/broken.hcl": `code "a" { type = "pkg.A"`,
	})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "failed to parse")
}

func TestManifest_DuplicateAcrossFilesFailsLint(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{
		"codes/a.hcl": `
			code "dup" {
				type = "a.Type"
			}
		`,
		"codes/b.hcl": `
			code "dup" {
				type = "b.Type"
			}
		`,
	})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "code table validation failed")
	assert.Contains(t, result.Err.Error(), `"dup"`)
}
