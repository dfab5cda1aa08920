package config

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. HHPLAN_LOG_LEVEL or HHPLAN_SIMS.
const EnvPrefix = "HHPLAN"

// Settings are the run options of the command line tool. They come from
// flags, HHPLAN_* environment variables or an optional hhplan.yaml file, in
// that order of precedence.
type Settings struct {
	PlanFile    string `mapstructure:"file"`
	Scenario    string `mapstructure:"scenario"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Simulations int    `mapstructure:"sims"`
	Seed        int64  `mapstructure:"seed"`
	Workers     int    `mapstructure:"workers"`
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
	MetricsFile string `mapstructure:"metrics-file"`
}

// NewViper returns a viper instance wired for hhplan settings.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("hhplan")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.hhplan")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that AutomaticEnv reaches it on Unmarshal.
	v.SetDefault("file", "")
	v.SetDefault("scenario", "")
	v.SetDefault("format", "console")
	v.SetDefault("output", "")
	v.SetDefault("sims", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("workers", 0)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "console")
	v.SetDefault("metrics-file", "")
	return v
}

// LoadSettings reads the optional settings file and resolves the final settings.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// Validate checks the numeric options and the log encoding.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Simulations, validation.Min(0)),
		validation.Field(&s.Workers, validation.Min(0)),
		validation.Field(&s.LogFormat, validation.In("console", "json")),
	)
}
