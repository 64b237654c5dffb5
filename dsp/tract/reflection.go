package tract

// Reflection returns the fraction of a wave traveling from impedance source
// into impedance target that is reflected at the boundary. For positive
// impedances the result lies in (-1, 1).
func Reflection(source, target float64) float64 {
	return (target - source) / (target + source)
}

// impedanceOf converts a cross-sectional area to impedance. The area is
// limited to [MinArea, 1/MinArea] first (NaN counts as closed), so the
// impedance is always finite and positive.
func impedanceOf(area float64) float64 {
	if !(area >= MinArea) {
		area = MinArea
	}
	if area > 1/MinArea {
		area = 1 / MinArea
	}
	return 1 / area
}
