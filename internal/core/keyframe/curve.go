package keyframe

// Curve maps a linear playback fraction to an eased fraction. Both input and
// output are in [0,1].
type Curve func(float64) float64

// Linear performs no easing.
func Linear(progress float64) float64 {
	return progress
}

// EaseInOut accelerates into the animation and decelerates out of it.
func EaseInOut(progress float64) float64 {
	if progress <= 0.5 {
		return 2 * progress * progress
	}
	return -1 + (4-2*progress)*progress
}

// EaseOut starts quickly and decelerates toward the end.
func EaseOut(progress float64) float64 {
	return progress * (2 - progress)
}
