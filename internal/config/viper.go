// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/extracto/internal/models"
	"fjacquet/extracto/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Text extraction backends.
const (
	BackendAuto      = "auto"
	BackendNative    = "native"
	BackendPdftotext = "pdftotext"
)

// EnvPrefix is prepended to every environment override, e.g.
// EXTRACTO_OUTPUT_FORMAT=csv.
const EnvPrefix = "EXTRACTO"

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ExtractorConfig selects how PDF text is obtained.
type ExtractorConfig struct {
	Backend       string `mapstructure:"backend" yaml:"backend"`
	PdftotextPath string `mapstructure:"pdftotext_path" yaml:"pdftotext_path"`
	Layout        bool   `mapstructure:"layout" yaml:"layout"`
}

// OutputConfig controls the written file and the console summary.
type OutputConfig struct {
	Format      string `mapstructure:"format" yaml:"format"`
	Suffix      string `mapstructure:"suffix" yaml:"suffix"`
	PreviewRows int    `mapstructure:"preview_rows" yaml:"preview_rows"`
	Color       bool   `mapstructure:"color" yaml:"color"`
}

// CSVConfig applies when Output.Format is csv.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Config represents the complete application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Extractor ExtractorConfig `mapstructure:"extractor" yaml:"extractor"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	CSV       CSVConfig       `mapstructure:"csv" yaml:"csv"`
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// InitializeConfig loads configuration from defaults, the first config.yaml
// found in $HOME/.extracto, .extracto or the working directory, and
// EXTRACTO_* environment variables, in increasing order of precedence.
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig is InitializeConfig with an explicit config file. An empty
// path searches the default locations; an explicit file that cannot be
// read is an error.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.extracto")
		v.AddConfigPath(".extracto")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// The unprefixed names are read before the config exists, by main.
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration without reading files or
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("extractor.backend", BackendAuto)
	v.SetDefault("extractor.pdftotext_path", "pdftotext")
	v.SetDefault("extractor.layout", true)

	v.SetDefault("output.format", models.OutputFormatXLSX)
	v.SetDefault("output.suffix", "_Movimientos")
	v.SetDefault("output.preview_rows", 5)
	v.SetDefault("output.color", true)

	v.SetDefault("csv.delimiter", ",")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Extractor.Backend {
	case BackendAuto, BackendNative, BackendPdftotext:
	default:
		return fmt.Errorf("invalid extractor backend: %s (must be 'auto', 'native' or 'pdftotext')", config.Extractor.Backend)
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return err
	}

	if config.Output.PreviewRows < 0 {
		return fmt.Errorf("output.preview_rows must not be negative, got: %d", config.Output.PreviewRows)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}

	return nil
}
