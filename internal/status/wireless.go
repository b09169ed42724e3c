package status

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ConnectedMarker is shown while the link is up.
const ConnectedMarker = "*"

// LinkMarker renders the wireless indicator.
func LinkMarker(connected bool) string {
	if connected {
		return ConnectedMarker
	}
	return ""
}

// DefaultNetPath is where Linux exposes network interfaces.
const DefaultNetPath = "/sys/class/net"

// SysfsLink reports whether a network link is up.
type SysfsLink struct {
	NetPath string
	// Interface pins one interface. When empty, any wireless interface that
	// is up counts; hosts without wireless interfaces fall back to any
	// non-loopback interface.
	Interface string
}

// ReadLink implements the link source.
func (s SysfsLink) ReadLink() (bool, error) {
	root := s.NetPath
	if root == "" {
		root = DefaultNetPath
	}

	if s.Interface != "" {
		return operUp(filepath.Join(root, s.Interface))
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return false, fmt.Errorf("list interfaces: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() != "lo" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var wireless, wired []string
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(root, name, "wireless")); err == nil {
			wireless = append(wireless, name)
		} else {
			wired = append(wired, name)
		}
	}
	candidates := wireless
	if len(candidates) == 0 {
		candidates = wired
	}

	for _, name := range candidates {
		up, err := operUp(filepath.Join(root, name))
		if err != nil {
			continue
		}
		if up {
			return true, nil
		}
	}
	return false, nil
}

func operUp(dir string) (bool, error) {
	state, err := readTrimmed(filepath.Join(dir, "operstate"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read operstate: %w", err)
	}
	return state == "up", nil
}
