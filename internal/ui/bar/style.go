package bar

import (
	"image/color"
	"strconv"
	"strings"
)

// parseHexColor parses #rgb and #rrggbb notations.
func parseHexColor(value string) (color.NRGBA, bool) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")

	switch len(value) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = value[i]
			expanded[2*i+1] = value[i]
		}
		value = string(expanded)
	case 6:
	default:
		return color.NRGBA{}, false
	}

	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
		A: 0xff,
	}, true
}

// parsePixels parses values like "3px" or "3".
func parsePixels(value string) (float32, bool) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	pixels, err := strconv.ParseFloat(value, 32)
	if err != nil || pixels < 0 {
		return 0, false
	}
	return float32(pixels), true
}

// parseFraction parses a 0..1 value such as the opacity property.
func parseFraction(value string) (float64, bool) {
	fraction, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || fraction < 0 || fraction > 1 {
		return 0, false
	}
	return fraction, true
}

// parseTranslateX parses "translateX(-100%)" into a travel fraction.
func parseTranslateX(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "translateX(") || !strings.HasSuffix(value, ")") {
		return 0, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "translateX("), ")")
	inner = strings.TrimSuffix(strings.TrimSpace(inner), "%")
	percent, err := strconv.ParseFloat(inner, 64)
	if err != nil {
		return 0, false
	}
	return percent / 100, true
}
