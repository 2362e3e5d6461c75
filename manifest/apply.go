package manifest

import (
	"context"
	"fmt"

	"github.com/vk/fcodego/internal/ctxlog"
	"github.com/vk/fcodego/registry"
)

// Apply registers every declared code into the registry through the
// definition-time path, keyed by declared type name. A registry rejection
// (duplicate or invalid code) aborts the apply and reports the declaring
// file, which is the whole of manifest linting: a model that applies cleanly
// to a fresh registry is a valid code table.
func (m *Model) Apply(ctx context.Context, r *registry.Registry[string]) error {
	logger := ctxlog.FromContext(ctx)

	for _, decl := range m.Codes {
		if err := r.Def(decl.Code, decl.TypeName, decl.Legacy...); err != nil {
			return fmt.Errorf("manifest %s: code %q: %w", decl.FSInformation.FilePath, decl.Code, err)
		}
	}

	logger.Debug("Applied code declarations to registry.", "count", len(m.Codes))
	return nil
}
