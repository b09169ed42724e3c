package slot

// Curve maps linear progress in [0,1] to eased progress.
type Curve func(p float64) float64

// Linear leaves progress untouched.
func Linear(p float64) float64 { return p }

// EaseOut starts fast and decelerates into the target (cubic).
func EaseOut(p float64) float64 {
	u := 1 - p
	return 1 - u*u*u
}
