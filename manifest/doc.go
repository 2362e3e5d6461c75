// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package manifest loads code declarations from configuration files into a
// format-agnostic model and applies that model to a registry.
//
// A code manifest binds wire/storage codes to type names outside the Go
// source, so operators can audit the code table without reading code and a
// rename leaves an explicit legacy trail in review. Two file forms are
// supported: HCL (preferred) and YAML. Both decode into the same Model;
// everything downstream of the loader is format-agnostic.
package manifest
