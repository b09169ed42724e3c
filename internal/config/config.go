// Package config loads fuzzyclock settings from defaults, an optional YAML
// file, FUZZYCLOCK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
	"github.com/faizmokh/fuzzyclock/internal/logger"
	"github.com/faizmokh/fuzzyclock/internal/slot"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

// EnvPrefix namespaces environment overrides, e.g. FUZZYCLOCK_LOCALE.
const EnvPrefix = "FUZZYCLOCK"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the face.
type Config struct {
	Locale            string        `mapstructure:"locale" yaml:"locale"`
	AnimationDuration time.Duration `mapstructure:"animation-duration" yaml:"animation-duration"`
	FrameRate         int           `mapstructure:"frame-rate" yaml:"frame-rate"`
	PollInterval      time.Duration `mapstructure:"poll-interval" yaml:"poll-interval"`
	BatteryPath       string        `mapstructure:"battery-path" yaml:"battery-path"`
	NetPath           string        `mapstructure:"net-path" yaml:"net-path"`
	WirelessInterface string        `mapstructure:"wireless-interface" yaml:"wireless-interface"`
	Alert             bool          `mapstructure:"alert" yaml:"alert"`
	LogFile           string        `mapstructure:"log-file" yaml:"log-file"`
	LogLevel          string        `mapstructure:"log-level" yaml:"log-level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Locale:            fuzzy.English.Name,
		AnimationDuration: slot.DefaultDuration,
		FrameRate:         30,
		PollInterval:      status.DefaultPollInterval,
		BatteryPath:       status.DefaultPowerSupplyPath,
		NetPath:           status.DefaultNetPath,
		WirelessInterface: "",
		Alert:             true,
		LogFile:           "",
		LogLevel:          logger.LevelNormal.String(),
	}
}

// Load resolves the effective config. file may be empty, in which case
// defaultFile is tried; a missing file is not an error. Flags that were set
// on the command line override everything else.
func Load(file, defaultFile string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	def := Default()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("animation-duration", def.AnimationDuration)
	v.SetDefault("frame-rate", def.FrameRate)
	v.SetDefault("poll-interval", def.PollInterval)
	v.SetDefault("battery-path", def.BatteryPath)
	v.SetDefault("net-path", def.NetPath)
	v.SetDefault("wireless-interface", def.WirelessInterface)
	v.SetDefault("alert", def.Alert)
	v.SetDefault("log-file", def.LogFile)
	v.SetDefault("log-level", def.LogLevel)

	if flags != nil {
		for _, name := range []string{"locale", "log-level", "log-file"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return cfg, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	switch {
	case file != "":
		v.SetConfigFile(file)
	case defaultFile != "":
		v.SetConfigFile(defaultFile)
	}

	if file != "" || defaultFile != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if file != "" || (!errors.As(err, &notFound) && !os.IsNotExist(err)) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if _, err := fuzzy.LookupLocale(c.Locale); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.AnimationDuration <= 0 || c.AnimationDuration >= time.Minute {
		return fmt.Errorf("%w: animation-duration %s must be between 0 and 1m", ErrInvalid, c.AnimationDuration)
	}
	if c.FrameRate < 1 || c.FrameRate > 120 {
		return fmt.Errorf("%w: frame-rate %d must be between 1 and 120", ErrInvalid, c.FrameRate)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll-interval %s must be positive", ErrInvalid, c.PollInterval)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Formatter builds the formatter for the configured locale.
func (c Config) Formatter() (*fuzzy.Formatter, error) {
	loc, err := fuzzy.LookupLocale(c.Locale)
	if err != nil {
		return nil, err
	}
	return fuzzy.NewFormatter(loc), nil
}

// Level returns the parsed log level, falling back to normal.
func (c Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelNormal
	}
	return level
}

// FrameInterval is the wait between animation frames.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FrameRate)
}
