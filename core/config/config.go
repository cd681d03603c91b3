// Package config loads and validates the shell's configuration file.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the name of the configuration file.
const ConfigurationName = "clamsh.yaml"

// Config holds the user-tunable settings of a shell session.
type Config struct {
	// Motd is printed once when an interactive session starts.
	Motd string `json:"motd"`

	// Prompt is the PS1-style prompt template. Supports \u, \h, \w
	// and \$ like the shells it imitates.
	Prompt string `json:"prompt" validate:"required"`

	// HistorySize caps the number of retained history entries;
	// zero disables the cap.
	HistorySize int `json:"history_size" validate:"gte=0"`

	// IFS overrides the default field separator set for builtins that
	// split input. Leave empty to use the POSIX default.
	IFS string `json:"ifs"`
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Config {
	var out Config
	// The embedded default must always parse.
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// DefaultConfigData returns the raw bytes of the default config file,
// suitable for writing out with `clamsh init`.
func DefaultConfigData() []byte {
	return append([]byte(nil), defaultConfigData...)
}
