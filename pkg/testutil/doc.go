// Package testutil provides utilities for testing renum components.
//
// Key components:
//   - MemoryFS: In-memory filesystem implementation for fast, isolated tests,
//     with per-path error injection and read/write counters
//   - File helpers: CreateFile, CreateDir, and content assertions against
//     real temp directories
//
// Usage guidelines:
//   - Prefer MemoryFS for executor and selection tests; reserve real
//     filesystem tests for the OS seam and CLI integration
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
