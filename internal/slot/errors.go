package slot

import "errors"

// ErrSchedulerClosed is returned by Animate after the scheduler shut down.
var ErrSchedulerClosed = errors.New("animation scheduler closed")
