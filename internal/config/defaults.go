package config

import (
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	defaultLambda        = 3.0
	defaultStartDate     = "1909-01-01"
	defaultEndDate       = "1912-03-31"
	defaultSeed          = 42
	defaultBookCount     = 1000
	defaultSmallPageArea = 200.0
	defaultLargePageArea = 620.0
	defaultLyricMean     = 33.0
	defaultProseMean     = 19.0
	defaultStdDev        = 5.0
	defaultLyricWeight   = 0.5
	defaultLyricSmall    = 0.85
	defaultProseSmall    = 0.25
	defaultAlpha         = 0.05
)

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Letters defaults.
	viperCfg.SetDefault("letters.lambda", defaultLambda)
	viperCfg.SetDefault("letters.start_date", defaultStartDate)
	viperCfg.SetDefault("letters.end_date", defaultEndDate)
	viperCfg.SetDefault("letters.seed", defaultSeed)
	viperCfg.SetDefault("letters.output", "data/letters.csv")

	// Books defaults.
	viperCfg.SetDefault("books.count", defaultBookCount)
	viperCfg.SetDefault("books.seed", defaultSeed)
	viperCfg.SetDefault("books.output", "data/margin.csv")
	viperCfg.SetDefault("books.small_page_area", defaultSmallPageArea)
	viperCfg.SetDefault("books.large_page_area", defaultLargePageArea)
	viperCfg.SetDefault("books.lyric_mean", defaultLyricMean)
	viperCfg.SetDefault("books.prose_mean", defaultProseMean)
	viperCfg.SetDefault("books.std_dev", defaultStdDev)
	viperCfg.SetDefault("books.lyric_weight", defaultLyricWeight)
	viperCfg.SetDefault("books.lyric_small", defaultLyricSmall)
	viperCfg.SetDefault("books.prose_small", defaultProseSmall)

	// Report defaults.
	viperCfg.SetDefault("report.alpha", defaultAlpha)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")
}
