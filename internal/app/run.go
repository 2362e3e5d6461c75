package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/fcodego/internal/ctxlog"
)

// Run executes the main application logic: apply the loaded manifests to the
// registry, freeze it, and report the resulting code groups.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.model.Apply(ctx, a.registry); err != nil {
		return fmt.Errorf("code table validation failed: %w", err)
	}
	a.logger.Info("Code table is valid.", "codes_registered", a.registry.Len())

	if !a.config.AllowRemoval {
		a.registry.SetLocked(true)
		a.logger.Debug("Registry locked after startup.")
	}

	var filter func(string) bool
	if a.config.Filter != "" {
		prefix := a.config.Filter
		filter = func(typeName string) bool { return strings.HasPrefix(typeName, prefix) }
	}
	groups := a.registry.CodeGroups(filter)

	if err := a.report(groups); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
