package integration_tests

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fcodego/internal/app"
	"github.com/vk/fcodego/internal/testutil"
)

func TestYAMLManifest_BuildsCodeTable(t *testing.T) {
	manifestYAML := `
codes:
  - code: order.placed
    type: shop.OrderPlaced
    legacy: [order_placed]
  - code: order.shipped
    type: shop.OrderShipped
`
	result := testutil.RunIntegrationTest(t, map[string]string{
		"codes/main.yaml": manifestYAML,
	})

	require.NoError(t, result.Err)
	reg := result.App.Registry()

	typeName, err := reg.Resolve("order_placed")
	require.NoError(t, err)
	assert.Equal(t, "shop.OrderPlaced", typeName)
	assert.Equal(t, 3, reg.Len())
}

func TestMixedManifests_ShareOneTable(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{
		"codes/a.hcl": `
			code "order.placed" {
				type = "shop.OrderPlaced"
			}
		`,
		"codes/b.yaml": `
codes:
  - code: order.shipped
    type: shop.OrderShipped
`,
	})

	require.NoError(t, result.Err)
	reg := result.App.Registry()
	_, err := reg.Resolve("order.placed")
	require.NoError(t, err)
	_, err = reg.Resolve("order.shipped")
	require.NoError(t, err)
}

func TestJSONReport(t *testing.T) {
	result := testutil.RunIntegrationTestWithConfig(t, map[string]string{
		"codes/main.yaml": `
codes:
  - code: order.placed
    type: shop.OrderPlaced
    legacy: [order_placed]
`,
	}, app.Config{Output: "json", LogLevel: "error"})

	require.NoError(t, result.Err)

	// With logging squelched the report is the only output.
	start := strings.Index(result.Output, "[")
	require.GreaterOrEqual(t, start, 0, "no JSON array found in output")

	var entries []struct {
		Code   string   `json:"code"`
		Type   string   `json:"type"`
		Legacy []string `json:"legacy"`
	}
	dec := json.NewDecoder(strings.NewReader(result.Output[start:]))
	require.NoError(t, dec.Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "order.placed", entries[0].Code)
	assert.Equal(t, "shop.OrderPlaced", entries[0].Type)
	assert.Equal(t, []string{"order_placed"}, entries[0].Legacy)
}
