package preferences

import (
	"fmt"
	"time"

	"loadbar/internal/core/indicator"
)

// Settings defines editable demo preferences.
type Settings struct {
	Background string        // bar color in #rgb or #rrggbb notation
	HeightPx   int           // bar thickness in pixels
	Simulate   time.Duration // length of a simulated load
}

// DefaultSettings returns the demo defaults, matching the indicator's
// built-in style.
func DefaultSettings() Settings {
	return Settings{
		Background: "#29d",
		HeightPx:   3,
		Simulate:   3 * time.Second,
	}
}

// StyleOverrides converts settings to indicator style overrides.
func (settings Settings) StyleOverrides() indicator.Style {
	return indicator.Style{
		"background": settings.Background,
		"height":     fmt.Sprintf("%dpx", settings.HeightPx),
	}
}
