//go:build !cgo

package emulator

import (
	"context"
	"errors"
)

// Run is unavailable without cgo; ebiten needs it for the window system.
func Run(_ context.Context, _ Options) error {
	return errors.New("emulator: window support requires cgo")
}
