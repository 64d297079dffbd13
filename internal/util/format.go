package util

import "fmt"

// FormatMinutes renders a minute estimate compactly: "45m", "2h", "1h30m".
// Non-positive estimates render as an empty string so callers can skip them.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
