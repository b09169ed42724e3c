package status

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ChargingMarker is appended to the battery indicator while charging.
const ChargingMarker = "+"

// Battery is one battery report.
type Battery struct {
	Percent  int
	Charging bool
	Present  bool
}

// Text is the numeric indicator, e.g. "87%". A missing battery renders "".
func (b Battery) Text() string {
	if !b.Present {
		return ""
	}
	p := b.Percent
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return fmt.Sprintf("%d%%", p)
}

// Marker is ChargingMarker while charging and "" otherwise.
func (b Battery) Marker() string {
	if b.Present && b.Charging {
		return ChargingMarker
	}
	return ""
}

// DefaultPowerSupplyPath is where Linux exposes batteries.
const DefaultPowerSupplyPath = "/sys/class/power_supply"

// SysfsBattery reads a battery from the power_supply class.
type SysfsBattery struct {
	// Path is either one supply directory (…/BAT0) or the class directory,
	// in which case the first supply of type "Battery" is used.
	Path string
}

// ReadBattery implements the battery source.
func (s SysfsBattery) ReadBattery() (Battery, error) {
	dir, err := s.resolve()
	if err != nil {
		return Battery{}, err
	}
	if dir == "" {
		return Battery{}, nil
	}

	capacity, err := readTrimmed(filepath.Join(dir, "capacity"))
	if err != nil {
		return Battery{}, fmt.Errorf("read battery capacity: %w", err)
	}
	percent, err := strconv.Atoi(capacity)
	if err != nil {
		return Battery{}, fmt.Errorf("parse battery capacity %q: %w", capacity, err)
	}

	state, err := readTrimmed(filepath.Join(dir, "status"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Battery{}, fmt.Errorf("read battery status: %w", err)
	}

	return Battery{
		Percent:  percent,
		Charging: strings.EqualFold(state, "Charging"),
		Present:  true,
	}, nil
}

func (s SysfsBattery) resolve() (string, error) {
	path := s.Path
	if path == "" {
		path = DefaultPowerSupplyPath
	}
	if _, err := os.Stat(filepath.Join(path, "capacity")); err == nil {
		return path, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("list power supplies: %w", err)
	}
	for _, entry := range entries {
		dir := filepath.Join(path, entry.Name())
		kind, err := readTrimmed(filepath.Join(dir, "type"))
		if err != nil {
			continue
		}
		if kind == "Battery" {
			return dir, nil
		}
	}
	return "", nil
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
