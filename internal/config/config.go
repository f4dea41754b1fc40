// Package config provides configuration loading and validation for gonormal.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/sartorproj/gonormal/simulate"
)

// Sentinel validation errors.
var (
	ErrInvalidLambda    = errors.New("lambda must be positive")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidBookCount = errors.New("book count must not be negative")
	ErrInvalidStdDev    = errors.New("std dev must be positive")
	ErrInvalidWeight    = errors.New("weight must be a probability")
	ErrInvalidAlpha     = errors.New("alpha must be in (0, 1)")
)

// DateLayout is the layout of configured dates.
const DateLayout = "2006-01-02"

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "GONORMAL"

// Config holds all configuration for gonormal.
type Config struct {
	Letters LettersConfig `mapstructure:"letters"`
	Books   BooksConfig   `mapstructure:"books"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LettersConfig holds the letter-count simulation settings.
type LettersConfig struct {
	StartDate string  `mapstructure:"start_date"`
	EndDate   string  `mapstructure:"end_date"`
	Output    string  `mapstructure:"output"`
	Lambda    float64 `mapstructure:"lambda"`
	Seed      uint64  `mapstructure:"seed"`
}

// BooksConfig holds the book dataset settings.
type BooksConfig struct {
	Output        string  `mapstructure:"output"`
	Count         int     `mapstructure:"count"`
	Seed          uint64  `mapstructure:"seed"`
	SmallPageArea float64 `mapstructure:"small_page_area"`
	LargePageArea float64 `mapstructure:"large_page_area"`
	LyricMean     float64 `mapstructure:"lyric_mean"`
	ProseMean     float64 `mapstructure:"prose_mean"`
	StdDev        float64 `mapstructure:"std_dev"`
	LyricWeight   float64 `mapstructure:"lyric_weight"`
	LyricSmall    float64 `mapstructure:"lyric_small"`
	ProseSmall    float64 `mapstructure:"prose_small"`
}

// ReportConfig holds reporting settings.
type ReportConfig struct {
	Alpha float64 `mapstructure:"alpha"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("gonormal")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, errors.Wrap(readErr, "failed to read config file")
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, errors.Wrap(unmarshalErr, "failed to unmarshal config")
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, errors.Wrap(validateErr, "invalid configuration")
	}

	return &config, nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if _, err := c.Letters.Simulation(); err != nil {
		return err
	}
	if err := c.Books.validate(); err != nil {
		return err
	}
	if !(c.Report.Alpha > 0 && c.Report.Alpha < 1) {
		return errors.Wrapf(ErrInvalidAlpha, "%v", c.Report.Alpha)
	}
	return nil
}

// Simulation converts the section into simulator parameters.
func (c LettersConfig) Simulation() (simulate.LettersConfig, error) {
	if !(c.Lambda > 0) {
		return simulate.LettersConfig{}, errors.Wrapf(ErrInvalidLambda, "%v", c.Lambda)
	}

	start, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return simulate.LettersConfig{}, errors.Wrapf(ErrInvalidDateRange, "start date %q", c.StartDate)
	}
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return simulate.LettersConfig{}, errors.Wrapf(ErrInvalidDateRange, "end date %q", c.EndDate)
	}
	if end.Before(start) {
		return simulate.LettersConfig{}, errors.Wrapf(ErrInvalidDateRange, "%s is before %s", c.EndDate, c.StartDate)
	}

	return simulate.LettersConfig{Lambda: c.Lambda, Start: start, End: end}, nil
}

// Simulation converts the section into generator parameters.
func (c BooksConfig) Simulation() (simulate.BooksConfig, error) {
	if err := c.validate(); err != nil {
		return simulate.BooksConfig{}, err
	}
	return simulate.BooksConfig{
		Count:         c.Count,
		SmallPageArea: c.SmallPageArea,
		LargePageArea: c.LargePageArea,
		LyricMean:     c.LyricMean,
		ProseMean:     c.ProseMean,
		StdDev:        c.StdDev,
		LyricWeight:   c.LyricWeight,
		LyricSmall:    c.LyricSmall,
		ProseSmall:    c.ProseSmall,
	}, nil
}

func (c BooksConfig) validate() error {
	if c.Count < 0 {
		return errors.Wrapf(ErrInvalidBookCount, "%d", c.Count)
	}
	if !(c.StdDev > 0) {
		return errors.Wrapf(ErrInvalidStdDev, "%v", c.StdDev)
	}

	weights := []struct {
		key   string
		value float64
	}{
		{"books.lyric_weight", c.LyricWeight},
		{"books.lyric_small", c.LyricSmall},
		{"books.prose_small", c.ProseSmall},
	}
	for _, w := range weights {
		if !(w.value >= 0 && w.value <= 1) {
			return errors.Wrapf(ErrInvalidWeight, "%s: %v", w.key, w.value)
		}
	}
	return nil
}
