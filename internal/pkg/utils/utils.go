package utils

import (
	"fmt"
)

// FormatDuration renders a ground time in minutes as a caption.
// Example: 125 -> "2h 5m", 45 -> "45m", 60 -> "1h", 0 or less -> "0m"
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}

	switch h, m := minutes/60, minutes%60; {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
