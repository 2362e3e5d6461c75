package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/fcodego/internal/app"
	"github.com/vk/fcodego/manifest"
	"github.com/vk/fcodego/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output holds everything the app wrote: logs and the report.
	Output string
	Err    error
	App    *app.App
}

// RunIntegrationTest provides a standardized harness for integration tests.
// It writes the given manifest files (relative path → content) into a
// temporary directory, builds an App over it with the provided modules, and
// runs it. Startup panics are recovered into HarnessResult.Err.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module[string]) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithConfig(t, files, app.Config{}, modules...)
}

// RunIntegrationTestWithConfig is RunIntegrationTest with overrides for the
// report output, filter, and locking configuration fields.
func RunIntegrationTestWithConfig(t *testing.T, files map[string]string, overrides app.Config, modules ...registry.Module[string]) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		fullPath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o600))
	}

	cfg := app.Config{
		ManifestPath: tmpDir,
		LogFormat:    "text",
		LogLevel:     "debug",
		Output:       "text",
		Filter:       overrides.Filter,
		AllowRemoval: overrides.AllowRemoval,
	}
	if overrides.LogFormat != "" {
		cfg.LogFormat = overrides.LogFormat
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.Output != "" {
		cfg.Output = overrides.Output
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	buf := &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked: %v", r)
			}
		}()
		a := app.NewApp(buf, appConfig, manifest.NewLoader(), modules...)
		result.App = a
		result.Err = a.Run(context.Background())
	}()

	result.Output = buf.String()
	return result
}
