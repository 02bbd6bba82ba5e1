package config

// This file loads settings from the environment. A dotenv file, when present,
// fills in variables the real environment does not already define; CLI flags
// always win over both.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	beaverconfig "github.com/gobeaver/beaver-kit/config"
	"github.com/joho/godotenv"

	"github.com/backmassage/lsseq/internal/sequence"
)

// EnvPrefix is prepended to every Env tag name.
const EnvPrefix = "LSSEQ_"

// Env mirrors the LSSEQ_* environment variables.
type Env struct {
	ImageExtensions string `env:"IMAGE_EXTENSION"`
	MovieExtensions string `env:"MOV_EXTENSION"`
	LooseSeparator  string `env:"LOOSE_SEPARATOR"`
	Format          string `env:"FORMAT"`
}

// DefaultEnvFile returns ~/.config/lsseq/lsseq.env, or "" when the home
// directory cannot be determined.
func DefaultEnvFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lsseq", "lsseq.env")
}

// LoadEnv reads the dotenv file (if any) into the process environment and
// then decodes the LSSEQ_* variables. An explicitly named file must exist;
// the default file is optional.
func LoadEnv(envFile string) (Env, error) {
	path, required := envFile, true
	if path == "" {
		path, required = DefaultEnvFile(), false
	}
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return Env{}, fmt.Errorf("env file %s: %w", path, err)
			}
		}
	}

	var env Env
	if err := beaverconfig.Load(&env, beaverconfig.LoadOptions{Prefix: EnvPrefix}); err != nil {
		return Env{}, fmt.Errorf("environment: %w", err)
	}
	return env, nil
}

// Apply copies environment settings into cfg. changed reports whether a CLI
// flag was given explicitly; those settings are left alone.
func (e Env) Apply(cfg *Config, changed func(flag string) bool) {
	if e.ImageExtensions != "" {
		cfg.ImageExtensions = sequence.ParseExtensions(e.ImageExtensions)
	}
	if e.MovieExtensions != "" {
		cfg.MovieExtensions = sequence.ParseExtensions(e.MovieExtensions)
	}
	if truthy(e.LooseSeparator) && !changed("loose") {
		cfg.StrictSeparator = false
	}
	if e.Format != "" && !changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(e.Format))
	}
}

// truthy treats any non-empty value other than 0/false/no/off as set.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
