package config

import (
	"fmt"
	"os"
	"strings"

	"sortbench/internal/sorting"
)

var (
	memorySources = []string{"rss", "heap", "system"}
	outputFormats = []string{"json", "csv"}
)

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Validate checks s and returns every problem found in one error.
func Validate(s Settings) error {
	var errors []string

	if len(s.Sizes) == 0 {
		errors = append(errors, "sizes must list at least one data size")
	}
	for _, size := range s.Sizes {
		if size < 0 {
			errors = append(errors, fmt.Sprintf("sizes must be non-negative, got: %d", size))
		}
	}

	if _, err := sorting.Default().Select(s.Algorithms); err != nil {
		errors = append(errors, fmt.Sprintf("algorithms: %v", err))
	}

	if s.RandomMax <= 0 {
		errors = append(errors, fmt.Sprintf("random_max must be positive, got: %d", s.RandomMax))
	}

	if !strings.Contains(s.DataPattern, "%d") {
		errors = append(errors, fmt.Sprintf("data_pattern must contain %%d, got: %q", s.DataPattern))
	}

	if strings.TrimSpace(s.Output) == "" {
		errors = append(errors, "output must not be empty")
	}

	if !contains(outputFormats, s.Format) {
		errors = append(errors, fmt.Sprintf("format must be one of %s, got: %q", strings.Join(outputFormats, ", "), s.Format))
	}

	if !contains(memorySources, s.MemorySource) {
		errors = append(errors, fmt.Sprintf("memory_source must be one of %s, got: %q", strings.Join(memorySources, ", "), s.MemorySource))
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}

// ValidateConfig validates the configuration currently loaded into viper.
func ValidateConfig() error {
	s, err := Current()
	if err != nil {
		return fmt.Errorf("configuration validation failed:\n  %v", err)
	}
	return Validate(s)
}

// ValidateAndExit validates the configuration and exits with a non-zero code if validation fails.
func ValidateAndExit() {
	if err := ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
