package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Sizes         []int
	Algorithms    []string
	DataDir       string
	DataPattern   string
	SaveGenerated bool
	RandomMax     int
	Seed          int64 // 0 seeds from the clock
	Output        string
	Format        string
	MemorySource  string
	GC            bool
	HistoryFile   string
	MetricsFile   string
	ChartFile     string
	Verbose       bool
	LogFile       string
}

// Current reads Settings from viper. It fails only when a list value
// cannot be interpreted.
func Current() (Settings, error) {
	sizes, err := intList("sizes")
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Sizes:         sizes,
		Algorithms:    stringList("algorithms"),
		DataDir:       viper.GetString("data_dir"),
		DataPattern:   viper.GetString("data_pattern"),
		SaveGenerated: viper.GetBool("save_generated"),
		RandomMax:     viper.GetInt("random_max"),
		Seed:          viper.GetInt64("seed"),
		Output:        viper.GetString("output"),
		Format:        strings.ToLower(viper.GetString("format")),
		MemorySource:  strings.ToLower(viper.GetString("memory_source")),
		GC:            viper.GetBool("gc"),
		HistoryFile:   viper.GetString("history_file"),
		MetricsFile:   viper.GetString("metrics_file"),
		ChartFile:     viper.GetString("chart_file"),
		Verbose:       viper.GetBool("verbose"),
		LogFile:       viper.GetString("log_file"),
	}, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// intList accepts a YAML list as well as "1000,5000" from env or flags.
func intList(key string) ([]int, error) {
	raw := viper.Get(key)
	if s, ok := raw.(string); ok {
		var out []int
		for _, part := range splitList(s) {
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid integer %q", key, part)
			}
			out = append(out, v)
		}
		return out, nil
	}

	out, err := cast.ToIntSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return out, nil
}

func stringList(key string) []string {
	raw := viper.Get(key)
	if s, ok := raw.(string); ok {
		return splitList(s)
	}
	var out []string
	for _, v := range viper.GetStringSlice(key) {
		out = append(out, splitList(v)...)
	}
	return out
}
