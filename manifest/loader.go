package manifest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/fcodego/internal/ctxlog"
	"github.com/vk/fcodego/internal/fsutil"
)

// Loader loads code manifests from one or more paths into a Model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// NewLoader returns the default file-based loader, which understands both
// the HCL and YAML manifest forms and dispatches on file extension.
func NewLoader() Loader {
	return &fileLoader{}
}

type fileLoader struct{}

func (l *fileLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &Model{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		filePaths, err := fsutil.FindFilesByExtensions(path, ".hcl", ".yaml", ".yml")
		if err != nil {
			logger.Error("Failed to walk manifests path", "path", path, "error", err)
			return nil, err
		}
		if len(filePaths) == 0 {
			logger.Warn("No manifest files found in path", "path", path)
			continue
		}
		logger.Debug("Found manifest files to load", "files", filePaths)

		for _, filePath := range filePaths {
			var codes []*Code

			switch {
			case strings.HasSuffix(filePath, ".hcl"):
				hclFile, diags := parser.ParseHCLFile(filePath)
				if diags.HasErrors() {
					return nil, fmt.Errorf("failed to parse HCL manifest %s: %w", filePath, diags)
				}
				codes, diags = ParseHCLFile(ctx, hclFile, filePath)
				if diags.HasErrors() {
					return nil, fmt.Errorf("failed to process code declarations in %s: %w", filePath, diags)
				}
			default:
				data, err := os.ReadFile(filePath)
				if err != nil {
					return nil, fmt.Errorf("failed to read manifest %s: %w", filePath, err)
				}
				codes, err = ParseYAMLFile(ctx, data, filePath)
				if err != nil {
					return nil, err
				}
			}

			model.Codes = append(model.Codes, codes...)
			logger.Debug("Successfully loaded declarations from manifest", "file", filePath)
		}
	}

	logger.Info("Manifests loaded successfully.", "code_declarations_loaded", len(model.Codes))
	return model, nil
}
