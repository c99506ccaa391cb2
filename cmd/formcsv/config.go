package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config holds the demo settings, read from the environment and an optional .env file.
type config struct {
	// Output is the document written and read back
	Output string `env:"FORMCSV_OUTPUT" envDefault:"Csv.txt"`
	// Separator is the cell separator, a single character
	Separator string `env:"FORMCSV_SEPARATOR" envDefault:";"`
	// Export is an optional export path, the format follows the extension
	Export string `env:"FORMCSV_EXPORT"`
	// SQLite is an optional SQLite DSN the document is imported into
	SQLite string `env:"FORMCSV_SQLITE"`
	// Table is the SQLite table name
	Table string `env:"FORMCSV_TABLE" envDefault:"records"`
	// Debug switches to the development logger
	Debug bool `env:"FORMCSV_DEBUG" envDefault:"false"`
}

// errInvalidSeparator is returned when FORMCSV_SEPARATOR is not exactly one character
var errInvalidSeparator = errors.New("separator must be a single character")

// loadConfig reads .env (when present) and the environment.
func loadConfig() (config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if _, err := cfg.separator(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// separator returns the configured separator rune
func (c config) separator() (rune, error) {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return 0, fmt.Errorf("%w: %q", errInvalidSeparator, c.Separator)
	}
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r, nil
}
