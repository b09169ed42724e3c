package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// ConfigFileName is the config file inside the base path.
	ConfigFileName = "config.yml"
	// LogFileName is the default TUI log file inside the base path.
	LogFileName = "fuzzyclock.log"
)

// Paths centralizes where fuzzyclock files live on disk.
type Paths struct {
	basePath string
}

// NewPaths roots Paths at basePath, or at ResolveBasePath when empty.
func NewPaths(basePath string) (*Paths, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	return &Paths{basePath: abs}, nil
}

// BasePath returns the root directory.
func (p *Paths) BasePath() string {
	return p.basePath
}

// ConfigFile is the absolute path of the config file. It may not exist.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.basePath, ConfigFileName)
}

// LogFile is the absolute path of the default log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.basePath, LogFileName)
}

// WriteFile creates the base directory if needed and writes data to path.
// Existing files are left alone unless overwrite is set; ErrExists is
// returned in that case.
func (p *Paths) WriteFile(path string, data []byte, overwrite bool) error {
	if p == nil {
		return errors.New("files.Paths is nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, filePermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ErrExists is returned when refusing to overwrite a file.
var ErrExists = errors.New("file already exists")
