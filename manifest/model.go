// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

// Model is the format-agnostic collection of code declarations, in the
// order they were loaded.
type Model struct {
	Codes []*Code
}

// Code is a single declared binding between an active code, its legacy
// aliases, and a type name.
type Code struct {
	// Code is the active (canonical) identifier.
	Code string
	// TypeName names the bound type as declared in the manifest. The
	// manifest layer treats it as an opaque tag; reconciling it with a Go
	// type is the host's business.
	TypeName string
	// Legacy lists deprecated aliases that must keep resolving, in
	// declaration order.
	Legacy []string
	// Description is optional operator-facing documentation.
	Description string

	FSInformation *FSInfo
}

// FSInfo connects a parsed declaration back to its source file, which is
// what error messages and lint reports point at.
type FSInfo struct {
	FilePath string
}

// NewFSInfo builds FSInfo for a declaration parsed from filePath.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}
