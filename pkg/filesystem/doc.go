// Package filesystem provides filesystem implementations for renum.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem used by real runs.
package filesystem
