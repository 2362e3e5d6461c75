// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/fcodego/internal/ctxlog"
)

// codeRootSchema defines the top-level structure of a manifest file,
// expecting one or more 'code' blocks.
type codeRootSchema struct {
	Codes []*hclCode `hcl:"code,block"`
}

// hclCode represents a single 'code' block for decoding purposes. The block
// label is the active code itself.
type hclCode struct {
	Code string   `hcl:"code,label"`
	Body hcl.Body `hcl:",remain"`
}

// codeBodySchema describes the body of a 'code' block.
var codeBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type", Required: true},
		{Name: "legacy"},
		{Name: "description"},
	},
}

// ParseHCLFile decodes an HCL file containing one or more 'code' blocks.
func ParseHCLFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Code, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing code declarations from HCL file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	schema := &codeRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, schema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	codes := make([]*Code, 0, len(schema.Codes))

	for _, parsedCode := range schema.Codes {
		bodyContent, contentDiags := parsedCode.Body.Content(codeBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue // Skip this block but keep parsing the others.
		}

		decl := &Code{
			Code:          parsedCode.Code,
			FSInformation: NewFSInfo(filePath),
		}

		if attr, exists := bodyContent.Attributes["type"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &decl.TypeName)
			allDiags = append(allDiags, exprDiags...)
		}
		if attr, exists := bodyContent.Attributes["description"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &decl.Description)
			allDiags = append(allDiags, exprDiags...)
		}
		if attr, exists := bodyContent.Attributes["legacy"]; exists {
			legacy, legacyDiags := decodeLegacyAttr(attr)
			allDiags = append(allDiags, legacyDiags...)
			decl.Legacy = legacy
		}

		codes = append(codes, decl)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed code declarations", "count", len(codes))
	return codes, nil
}

// decodeLegacyAttr evaluates the 'legacy' attribute and converts it to a
// list of strings, preserving declaration order.
func decodeLegacyAttr(attr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	val, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid legacy codes",
			Detail:   "The 'legacy' attribute must be a list of strings: " + err.Error(),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return nil, diags
	}

	var legacy []string
	if val.IsNull() {
		return nil, diags
	}
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		legacy = append(legacy, elem.AsString())
	}
	return legacy, diags
}
