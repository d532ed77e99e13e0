package style

import (
	"github.com/arthur-debert/renum/pkg/types"
)

// StatusIndicator returns the styled marker for an item status.
func StatusIndicator(status types.ItemStatus) string {
	switch status {
	case types.StatusRenamed:
		return GetStyle("success").Render("✓")
	case types.StatusFailed:
		return GetStyle("error").Render("✗")
	case types.StatusPlanned:
		return GetStyle("muted").Render("○")
	default:
		return GetStyle("info").Render("•")
	}
}
