// Package config resolves runtime settings from defaults, an optional
// petcli.yaml, PETCLI_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/csheth/petcli/internal/events"
	"github.com/csheth/petcli/internal/store"
)

const (
	KeyDB          = "db"
	KeyTick        = "tick"
	KeyNoAltScreen = "no-alt-screen"
	KeyLogFile     = "log-file"

	envPrefix     = "PETCLI"
	configName    = "petcli"
	configPathEnv = "PETCLI_CONFIG_PATH"
)

var envReplacer = strings.NewReplacer("-", "_")

// Config wires runtime options into the program.
type Config struct {
	DBPath       string
	TickInterval time.Duration
	AltScreen    bool
	LogFile      string
}

// RegisterFlags adds the flags Load understands.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyDB, store.DefaultPath, "path to the pets JSON file")
	flags.Duration(KeyTick, events.DefaultTickInterval, "redraw interval")
	flags.Bool(KeyNoAltScreen, false, "disable the alternate screen buffer")
	flags.String(KeyLogFile, "", "write debug logs to this file")
}

// Load resolves the configuration. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyDB, store.DefaultPath)
	v.SetDefault(KeyTick, events.DefaultTickInterval)
	v.SetDefault(KeyNoAltScreen, false)
	v.SetDefault(KeyLogFile, "")

	v.SetConfigName(configName)
	if override := os.Getenv(configPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	dbPath, err := homedir.Expand(v.GetString(KeyDB))
	if err != nil {
		return Config{}, fmt.Errorf("expand db path: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString(KeyLogFile))
	if err != nil {
		return Config{}, fmt.Errorf("expand log path: %w", err)
	}
	tick := v.GetDuration(KeyTick)
	if tick <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %s", tick)
	}

	return Config{
		DBPath:       dbPath,
		TickInterval: tick,
		AltScreen:    !v.GetBool(KeyNoAltScreen),
		LogFile:      logFile,
	}, nil
}
