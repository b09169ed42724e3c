//go:build !cgo

package alert

import (
	"errors"

	"github.com/faizmokh/fuzzyclock/internal/logger"
)

// Beeper is unavailable without cgo.
type Beeper struct{}

func NewBeeper(_ *logger.Logger) (*Beeper, error) {
	return nil, errors.New("audio alerts require cgo (build with CGO_ENABLED=1)")
}

func (*Beeper) Alert() {}
