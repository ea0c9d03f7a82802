// Package config resolves prio settings from flags, environment and an
// optional .prio config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/faizmokh/prio/internal/files"
	"github.com/faizmokh/prio/internal/kv"
	"github.com/faizmokh/prio/internal/logging"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. PRIO_BACKEND.
	EnvPrefix = "PRIO"
	// PathEnv adds a directory to the config file search path.
	PathEnv = "PRIO_CONFIG_PATH"

	configName = ".prio"

	KeyHome     = "home"
	KeyBackend  = "backend"
	KeyLogLevel = "log.level"
	KeyColor    = "color"
)

// Config is the resolved runtime configuration.
type Config struct {
	Home     string
	Backend  kv.Backend
	LogLevel log.Level
	Color    bool
	// File is the config file that was read, if any.
	File string
}

// Load reads configuration. Flags that were set on the command line win over
// the environment, which wins over the config file, which wins over defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	home, err := files.ResolveBasePath()
	if err != nil {
		return Config{}, fmt.Errorf("resolve data directory: %w", err)
	}

	v.SetDefault(KeyHome, home)
	v.SetDefault(KeyBackend, string(kv.BackendDiskv))
	v.SetDefault(KeyLogLevel, logging.DefaultLevel.String())
	v.SetDefault(KeyColor, true)

	v.SetConfigName(configName)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(home)
	v.AddConfigPath("./")

	if flags != nil {
		for key, name := range map[string]string{
			KeyHome:     "home",
			KeyBackend:  "backend",
			KeyLogLevel: "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
		if f := flags.Lookup("no-color"); f != nil && f.Changed {
			v.Set(KeyColor, false)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	backend, err := kv.ParseBackend(v.GetString(KeyBackend))
	if err != nil {
		return Config{}, err
	}
	level, err := logging.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}
	dir, err := files.NormalizePath(v.GetString(KeyHome))
	if err != nil {
		return Config{}, fmt.Errorf("resolve data directory: %w", err)
	}

	return Config{
		Home:     dir,
		Backend:  backend,
		LogLevel: level,
		Color:    v.GetBool(KeyColor),
		File:     v.ConfigFileUsed(),
	}, nil
}
