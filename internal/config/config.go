// Package config loads and validates the TOML run configuration. The
// API key deliberately never appears in the file; it is read from the
// environment only.
package config

// #region imports
import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// #endregion

// #region types

// Config is the top-level run configuration.
type Config struct {
	Generation GenerationConfig `toml:"generation"`
	Models     ModelsConfig     `toml:"models"`
	Paths      PathsConfig      `toml:"paths"`
}

// GenerationConfig controls the retry loop and the shape of generated
// artifacts.
type GenerationConfig struct {
	ChartType      string `toml:"chart_type"`
	BatchSize      int    `toml:"batch_size"`
	OutputSize     int    `toml:"output_size"`
	MaxRetries     int    `toml:"max_retries"`
	AttemptTimeout string `toml:"attempt_timeout"`
}

// ModelsConfig names the generation and judge models.
type ModelsConfig struct {
	Generation string `toml:"generation"`
	Judge      string `toml:"judge"`
}

// PathsConfig locates inputs and outputs on disk.
type PathsConfig struct {
	Dataset      string `toml:"dataset"`
	ImageDir     string `toml:"image_dir"`
	QAPairs      string `toml:"qa_pairs"`
	OutcomeDB    string `toml:"outcome_db"`
	ExecutorAddr string `toml:"executor_addr"`
}

// #endregion types

// #region env

// APIKeyEnv is the only source for the chat service credential.
const APIKeyEnv = "VIZQA_API_KEY"

// APIKey reads the chat service credential from the environment.
func APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(APIKeyEnv))
	if key == "" {
		return "", fmt.Errorf("%s is not set", APIKeyEnv)
	}
	return key, nil
}

// #endregion env

// #region durations

// AttemptTimeoutDuration parses the attempt timeout, defaulting to two
// minutes on a missing or malformed value.
func (g GenerationConfig) AttemptTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(g.AttemptTimeout)
	if err != nil {
		return 2 * time.Minute
	}
	return d
}

// #endregion durations

// #region load

var validChartTypes = map[string]bool{
	"bar": true, "pie": true, "treemap": true, "donut": true,
	"scatter": true, "line": true, "radar": true, "heatmap": true,
	"box": true, "violin": true, "time_series": true,
}

func validatePath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.HasPrefix(cleanPath, "..") || strings.Contains(cleanPath, "../") {
		return fmt.Errorf("path contains invalid traversal sequence: %s", path)
	}
	return nil
}

// Load reads and parses the TOML configuration file, applying defaults
// for everything except the dataset path.
func Load(path string) (*Config, error) {
	if err := validatePath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Paths.Dataset == "" {
		return nil, fmt.Errorf("paths.dataset is required")
	}
	if !validChartTypes[cfg.Generation.ChartType] {
		return nil, fmt.Errorf("invalid chart_type: %s", cfg.Generation.ChartType)
	}
	if cfg.Generation.BatchSize <= 0 {
		return nil, fmt.Errorf("batch_size must be > 0, got %d", cfg.Generation.BatchSize)
	}
	if cfg.Generation.OutputSize <= 0 {
		return nil, fmt.Errorf("output_size must be > 0, got %d", cfg.Generation.OutputSize)
	}
	if cfg.Generation.MaxRetries < 1 {
		return nil, fmt.Errorf("max_retries must be >= 1, got %d", cfg.Generation.MaxRetries)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Generation.ChartType == "" {
		cfg.Generation.ChartType = "bar"
	}
	if cfg.Generation.BatchSize == 0 {
		cfg.Generation.BatchSize = 32
	}
	if cfg.Generation.OutputSize == 0 {
		cfg.Generation.OutputSize = 8
	}
	if cfg.Generation.MaxRetries == 0 {
		cfg.Generation.MaxRetries = 10
	}
	if cfg.Generation.AttemptTimeout == "" {
		cfg.Generation.AttemptTimeout = "2m"
	}
	if cfg.Models.Generation == "" {
		cfg.Models.Generation = "command-a-03-2025"
	}
	if cfg.Models.Judge == "" {
		cfg.Models.Judge = "c4ai-aya-vision-32b"
	}
	if cfg.Paths.ImageDir == "" {
		cfg.Paths.ImageDir = "./charts"
	}
	if cfg.Paths.QAPairs == "" {
		cfg.Paths.QAPairs = "./qa_pairs.json"
	}
	if cfg.Paths.OutcomeDB == "" {
		cfg.Paths.OutcomeDB = "./outcomes.db"
	}
	if cfg.Paths.ExecutorAddr == "" {
		cfg.Paths.ExecutorAddr = "localhost:50061"
	}
}

// #endregion load
