// Package types defines the core types and interfaces shared across renum.
// This includes the FS filesystem seam used by the rename executor and the
// report structures produced by a run.
package types
