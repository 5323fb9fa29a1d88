package indicator

// Style is a set of visual properties keyed by CSS-like property names.
// Values are kept as strings so hosts can interpret the subset they support.
type Style map[string]string

// DefaultStyle returns the built-in visual configuration: a thin full-width
// strip pinned to the top of the viewport, initially transparent and
// off-screen, non-interactive and low in the stacking order.
func DefaultStyle() Style {
	return Style{
		"position":      "fixed",
		"top":           "0",
		"left":          "0",
		"width":         "100%",
		"height":        "3px",
		"background":    "#29d",
		"opacity":       "0",
		"transform":     "translateX(-100%)",
		"pointerEvents": "none",
		"zIndex":        "10",
	}
}

// Merge returns a copy of style with the overrides applied on top. Keys
// present in overrides win; all other keys keep their existing values.
// Neither input is modified.
func (style Style) Merge(overrides Style) Style {
	merged := make(Style, len(style)+len(overrides))
	for key, value := range style {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}
