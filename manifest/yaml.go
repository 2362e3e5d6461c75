// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/fcodego/internal/ctxlog"
)

// yamlDocument is the internal parsing struct for a YAML manifest. It
// mirrors the public model but carries yaml struct tags; values are
// converted to the format-agnostic Code before being returned.
type yamlDocument struct {
	Codes []yamlCode `yaml:"codes"`
}

// yamlCode is the YAML representation of a single code declaration.
type yamlCode struct {
	Code        string   `yaml:"code"`
	Type        string   `yaml:"type"`
	Legacy      []string `yaml:"legacy,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// ParseYAMLFile decodes a YAML manifest holding a top-level 'codes' sequence.
func ParseYAMLFile(ctx context.Context, data []byte, filePath string) ([]*Code, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing code declarations from YAML file", "file_path", filePath)

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML manifest %s: %w", filePath, err)
	}

	codes := make([]*Code, 0, len(doc.Codes))
	for i, yc := range doc.Codes {
		if yc.Code == "" {
			return nil, fmt.Errorf("manifest %s: codes[%d] is missing the 'code' key", filePath, i)
		}
		if yc.Type == "" {
			return nil, fmt.Errorf("manifest %s: codes[%d] (%q) is missing the 'type' key", filePath, i, yc.Code)
		}
		codes = append(codes, &Code{
			Code:          yc.Code,
			TypeName:      yc.Type,
			Legacy:        yc.Legacy,
			Description:   yc.Description,
			FSInformation: NewFSInfo(filePath),
		})
	}

	logger.Debug("Successfully parsed code declarations", "count", len(codes))
	return codes, nil
}
