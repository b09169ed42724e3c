package display

import (
	"time"

	"github.com/faizmokh/fuzzyclock/internal/slot"
)

// RowGeometry returns the placement of the three time rows for a face width.
// Rows one and three park to the right and exit left; row two parks to the
// left and exits right.
func RowGeometry(width float64, d time.Duration) [3]slot.Geometry {
	right := slot.Geometry{Home: 0, Parked: width, Duration: d, Curve: slot.EaseOut}
	left := slot.Geometry{Home: 0, Parked: -width, Duration: d, Curve: slot.EaseOut}
	return [3]slot.Geometry{right, left, right}
}
