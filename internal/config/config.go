// Package config resolves runtime settings. There is no config file:
// settings come from built-in defaults, KMON_* environment variables,
// and command-line flags, in rising precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/kmon/internal/errors"
)

const (
	// DefaultSysfsRoot is the class tree probed for devices.
	DefaultSysfsRoot = "/sys/class"
	// DefaultInterval is the dashboard refresh period.
	DefaultInterval = 2 * time.Second
	// MinInterval guards against busy-looping the render cycle.
	MinInterval = 500 * time.Millisecond
)

// Config is the resolved runtime configuration.
type Config struct {
	// SysfsRoot is the directory the four category roots live under.
	SysfsRoot string
	// Interval is how often the dashboard repaints without input.
	Interval time.Duration
	// NoColor disables ANSI styling on all output.
	NoColor bool
	// Debug enables debug logging to stderr.
	Debug bool
}

// keys lists every setting; each maps to a persistent flag of the
// same name and, through the replacer, to a KMON_* variable
// (sysfs-root → KMON_SYSFS_ROOT).
var keys = []string{"sysfs-root", "interval", "no-color", "debug"}

var v = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("sysfs-root", DefaultSysfsRoot)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("no-color", false)
	v.SetDefault("debug", false)
	v.SetEnvPrefix("KMON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags connects cmd's persistent flags to the settings they
// shadow. Flags set on the command line win over environment
// variables and defaults.
func BindFlags(cmd *cobra.Command) error {
	for _, key := range keys {
		flag := cmd.PersistentFlags().Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to bind the --"+key+" flag", "")
		}
	}
	return nil
}

// Load resolves and validates the configuration.
func Load() (*Config, error) {
	cfg := &Config{
		SysfsRoot: v.GetString("sysfs-root"),
		Interval:  v.GetDuration("interval"),
		NoColor:   v.GetBool("no-color"),
		Debug:     v.GetBool("debug"),
	}

	if cfg.SysfsRoot == "" {
		return nil, errors.New(errors.ErrConfig,
			"Sysfs root cannot be empty",
			"Set --sysfs-root (or KMON_SYSFS_ROOT) to a directory like /sys/class")
	}
	if cfg.Interval < MinInterval {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is below the %s minimum", cfg.Interval, MinInterval),
			"Use --interval with a longer duration, e.g. --interval 2s")
	}

	return cfg, nil
}

// Reset discards flag bindings and returns to defaults. Tests use it
// to isolate themselves from each other.
func Reset() {
	v = newViper()
}
