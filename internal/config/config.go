// Package config loads emcalc settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvStrictInputs enables rejection of degenerate tool inputs.
	EnvStrictInputs = "EMCALC_STRICT_INPUTS"
	// EnvServerName overrides the name the MCP server reports.
	EnvServerName = "EMCALC_SERVER_NAME"

	DefaultServerName = "emcalc"
)

// Config holds runtime settings. Log level and format are read separately by
// the slogobs package.
type Config struct {
	StrictInputs bool
	ServerName   string
}

// Load reads .env files (default ".env") into the environment without
// overriding variables that are already set, then builds a Config. Missing
// files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{ServerName: DefaultServerName}

	if v := strings.TrimSpace(os.Getenv(EnvStrictInputs)); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvStrictInputs, err)
		}
		cfg.StrictInputs = strict
	}

	if v := strings.TrimSpace(os.Getenv(EnvServerName)); v != "" {
		cfg.ServerName = v
	}
	return cfg, nil
}
