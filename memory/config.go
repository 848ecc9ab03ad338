package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds simulator configuration
type Config struct {
	// Allocation Configuration
	FitPolicy    string `json:"fit_policy"`    // Default fit policy (first, best, worst, next)
	LastPosition int    `json:"last_position"` // Initial Next-Fit cursor

	// Paging Configuration
	ReplacementPolicy string `json:"replacement_policy"` // Default replacement policy (fifo, lru, optimal)
	FrameCount        int    `json:"frame_count"`        // Number of physical frames

	// Workload Configuration
	WorkloadCompression string `json:"workload_compression"` // Compression for saved workloads (none, snappy, lz4)

	// Output Configuration
	ChartWidth int `json:"chart_width"` // Width of the widest bar in the block chart

	// Performance Configuration
	EnableMetrics bool   `json:"enable_metrics"` // Whether to collect simulation metrics
	HistogramSize int    `json:"histogram_size"` // Latency samples kept per histogram
	LogLevel      string `json:"log_level"`      // Log level (debug, info, warn, error)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FitPolicy:           "first",
		LastPosition:        0,
		ReplacementPolicy:   "fifo",
		FrameCount:          3,
		WorkloadCompression: "none",
		ChartWidth:          50,
		EnableMetrics:       true,
		HistogramSize:       10000,
		LogLevel:            "info",
	}
}

// LoadConfigFromFile loads configuration from a JSON file
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	err = json.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigFromEnv loads configuration from environment variables
// Falls back to default values if environment variables are not set
func LoadConfigFromEnv() *Config {
	return DefaultConfig().ApplyEnv()
}

// ApplyEnv overrides fields from MEMSIM_* environment variables and
// returns the receiver
func (c *Config) ApplyEnv() *Config {
	// Allocation
	if val := os.Getenv("MEMSIM_FIT_POLICY"); val != "" {
		c.FitPolicy = val
	}

	if val := os.Getenv("MEMSIM_LAST_POSITION"); val != "" {
		if pos, err := strconv.Atoi(val); err == nil {
			c.LastPosition = pos
		}
	}

	// Paging
	if val := os.Getenv("MEMSIM_REPLACEMENT_POLICY"); val != "" {
		c.ReplacementPolicy = val
	}

	if val := os.Getenv("MEMSIM_FRAME_COUNT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.FrameCount = n
		}
	}

	// Workload
	if val := os.Getenv("MEMSIM_WORKLOAD_COMPRESSION"); val != "" {
		c.WorkloadCompression = val
	}

	// Output
	if val := os.Getenv("MEMSIM_CHART_WIDTH"); val != "" {
		if w, err := strconv.Atoi(val); err == nil {
			c.ChartWidth = w
		}
	}

	// Performance
	if val := os.Getenv("MEMSIM_ENABLE_METRICS"); val != "" {
		c.EnableMetrics = val == "true" || val == "1"
	}

	if val := os.Getenv("MEMSIM_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	return c
}

// SaveToFile saves the configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := ParseFitPolicy(c.FitPolicy); err != nil {
		return fmt.Errorf("invalid fit policy: %w", err)
	}

	if _, err := ParseReplacementPolicy(c.ReplacementPolicy); err != nil {
		return fmt.Errorf("invalid replacement policy: %w", err)
	}

	if c.FrameCount < 1 {
		return fmt.Errorf("frame count must be at least 1")
	}

	if c.LastPosition < 0 {
		return fmt.Errorf("last position cannot be negative")
	}

	if _, err := ParseCompression(c.WorkloadCompression); err != nil {
		return fmt.Errorf("invalid workload compression: %w", err)
	}

	if c.ChartWidth < 1 {
		return fmt.Errorf("chart width must be greater than 0")
	}

	if c.HistogramSize < 0 {
		return fmt.Errorf("histogram size cannot be negative")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
