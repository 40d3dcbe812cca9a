// ABOUTME: Small formatting helpers shared across CLI commands.
package main

import (
	"strings"
	"time"
)

// nowFn is swapped in tests.
var nowFn = time.Now

// shortID returns an 8-character ID prefix for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
