package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults reproduce the fixed benchmark configuration: three sizes, both
// algorithms, shared test data under data/test and results under
// data/results.
var (
	DefaultSizes      = []int{1000, 5000, 10000}
	DefaultAlgorithms = []string{"insertion", "bubble"}
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SORTBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", cfgFile, err)
	}
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("sizes", DefaultSizes)
	viper.SetDefault("algorithms", DefaultAlgorithms)
	viper.SetDefault("data_dir", "data/test")
	viper.SetDefault("data_pattern", "test_data_%d.json")
	viper.SetDefault("save_generated", false)
	viper.SetDefault("random_max", 10000)
	viper.SetDefault("seed", 0)
	viper.SetDefault("output", "data/results/go_results.json")
	viper.SetDefault("format", "json")
	viper.SetDefault("memory_source", "rss")
	viper.SetDefault("gc", true)
	viper.SetDefault("history_file", "")
	viper.SetDefault("metrics_file", "")
	viper.SetDefault("chart_file", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
}
