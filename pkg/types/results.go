package types

import "time"

// ItemStatus is the display status of a single rename task.
type ItemStatus string

const (
	// StatusPlanned marks a task that was only reported (dry run).
	StatusPlanned ItemStatus = "planned"
	// StatusRenamed marks a task whose rename completed.
	StatusRenamed ItemStatus = "renamed"
	// StatusFailed marks a task whose rename failed. The run continues
	// past failed items.
	StatusFailed ItemStatus = "failed"
)

// ItemResult records the outcome of one rename task for display.
type ItemResult struct {
	Index  int        `json:"index"`
	Source string     `json:"source"`
	Dest   string     `json:"dest"`
	Status ItemStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// RunReport is the top-level structure produced by a rename run.
type RunReport struct {
	Pattern   string       `json:"pattern"`
	Order     string       `json:"order"`
	DryRun    bool         `json:"dryRun"`
	Items     []ItemResult `json:"items"`
	Timestamp time.Time    `json:"timestamp"`
}

// Counts returns the number of items in each terminal state.
func (r *RunReport) Counts() (renamed, planned, failed int) {
	for _, item := range r.Items {
		switch item.Status {
		case StatusRenamed:
			renamed++
		case StatusPlanned:
			planned++
		case StatusFailed:
			failed++
		}
	}
	return renamed, planned, failed
}

// HasFailures reports whether any item in the run failed.
func (r *RunReport) HasFailures() bool {
	for _, item := range r.Items {
		if item.Status == StatusFailed {
			return true
		}
	}
	return false
}
