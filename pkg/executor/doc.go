// Package executor performs rename runs. It arranges the selected files
// in the requested traversal order, streams them through the pattern
// sequencer, and either records or performs each move depending on
// dry-run mode. Per-item failures never abort a run; they are logged and
// carried on the run report.
package executor
