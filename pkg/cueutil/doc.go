// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for parsing and validating CUE
// documents: schema-unified decoding into Go structs, file size guards, and
// error formatting with file/path context.
//
// Plugin files and the application config are both CUE documents validated
// against embedded schemas; this package holds the compile → unify →
// validate → decode flow they share.
package cueutil
