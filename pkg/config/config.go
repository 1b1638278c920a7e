package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:briefwire.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Oracle OracleConfig `yaml:"oracle" json:"oracle" jsonschema:"description=LLM oracle configuration"`

	Pipeline PipelineConfig `yaml:"pipeline" json:"pipeline" jsonschema:"description=Digest pipeline configuration"`

	Enrichment EnrichmentConfig `yaml:"enrichment" json:"enrichment" jsonschema:"description=Content enrichment configuration"`

	Sources []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=RSS/Atom sources for candidate pool ingestion"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Periodic digest generation"`
}

// ScheduleConfig controls periodic digest generation from configured sources
type ScheduleConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable periodic digest generation"`
	Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Generation interval"`
}

// OracleConfig holds LLM oracle connection settings
type OracleConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=4000,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// PipelineConfig holds digest pipeline tuning parameters
type PipelineConfig struct {
	BatchSize        int `yaml:"batch_size" json:"batch_size" jsonschema:"default=25,minimum=1,description=Documents per extraction batch"`
	PreFilterTarget  int `yaml:"prefilter_target" json:"prefilter_target" jsonschema:"default=100,description=Target pool size after relevance pre-filter"`
	ScoreThreshold   int `yaml:"score_threshold" json:"score_threshold" jsonschema:"default=5,minimum=0,maximum=10,description=Minimum relevance score for pre-filter inclusion"`
	MaxRetries       int `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,minimum=1,description=Bounded retry attempts per batch"`
	ContinuityTitles int `yaml:"continuity_titles" json:"continuity_titles" jsonschema:"default=5,description=Prior-digest titles carried into the continuity context"`
}

// EnrichmentConfig holds content enrichment settings
type EnrichmentConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-text enrichment for thin documents"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per document"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent extractions"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=200,description=Documents with shorter bodies get enriched"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Briefwire/1.0,description=User agent for HTTP requests"`
}

// SourceConfig describes one RSS/Atom source feeding the candidate pool
type SourceConfig struct {
	Name     string `yaml:"name" json:"name" jsonschema:"description=Source display name"`
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Category string `yaml:"category" json:"category" jsonschema:"description=Category tag applied to items"`
	Country  string `yaml:"country" json:"country" jsonschema:"description=Country tag applied to items"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with sane defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:briefwire.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Oracle.Temperature == 0 {
		c.Oracle.Temperature = 0.3
	}
	if c.Oracle.MaxTokens == 0 {
		c.Oracle.MaxTokens = 4000
	}
	if c.Oracle.Timeout == 0 {
		c.Oracle.Timeout = 120 * time.Second
	}

	if c.Pipeline.BatchSize == 0 {
		c.Pipeline.BatchSize = 25
	}
	if c.Pipeline.PreFilterTarget == 0 {
		c.Pipeline.PreFilterTarget = 100
	}
	if c.Pipeline.ScoreThreshold == 0 {
		c.Pipeline.ScoreThreshold = 5
	}
	if c.Pipeline.MaxRetries == 0 {
		c.Pipeline.MaxRetries = 3
	}
	if c.Pipeline.ContinuityTitles == 0 {
		c.Pipeline.ContinuityTitles = 5
	}

	if c.Enrichment.Timeout == 0 {
		c.Enrichment.Timeout = 30 * time.Second
	}
	if c.Enrichment.MaxConcurrent == 0 {
		c.Enrichment.MaxConcurrent = 5
	}
	if c.Enrichment.MinTextLength == 0 {
		c.Enrichment.MinTextLength = 200
	}
	if c.Enrichment.UserAgent == "" {
		c.Enrichment.UserAgent = "Briefwire/1.0"
	}

	for i := range c.Sources {
		if c.Sources[i].Name == "" {
			c.Sources[i].Name = c.Sources[i].URL
		}
	}

	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Oracle.Model == "" {
		return fmt.Errorf("oracle.model is required")
	}
	if cfg.Oracle.Temperature < 0 || cfg.Oracle.Temperature > 2 {
		return fmt.Errorf("oracle.temperature must be between 0 and 2")
	}

	if cfg.Pipeline.BatchSize < 1 {
		return fmt.Errorf("pipeline.batch_size must be at least 1")
	}
	if cfg.Pipeline.ScoreThreshold < 0 || cfg.Pipeline.ScoreThreshold > 10 {
		return fmt.Errorf("pipeline.score_threshold must be between 0 and 10")
	}
	if cfg.Pipeline.MaxRetries < 1 {
		return fmt.Errorf("pipeline.max_retries must be at least 1")
	}

	if cfg.Enrichment.Enabled {
		if cfg.Enrichment.Timeout < time.Second {
			return fmt.Errorf("enrichment timeout must be at least 1 second")
		}
		if cfg.Enrichment.MinTextLength < 0 {
			return fmt.Errorf("enrichment min_text_length must be non-negative")
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	for _, src := range cfg.Sources {
		if src.URL == "" {
			return fmt.Errorf("source %q has no url", src.Name)
		}
	}

	if cfg.Schedule.Enabled {
		if cfg.Schedule.Interval < time.Minute {
			return fmt.Errorf("schedule interval must be at least 1 minute")
		}
		if len(cfg.Sources) == 0 {
			return fmt.Errorf("schedule requires at least one source")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetOracleConfig returns oracle configuration
func (c *Config) GetOracleConfig() OracleConfig {
	return c.Oracle
}

// GetPipelineConfig returns digest pipeline configuration
func (c *Config) GetPipelineConfig() PipelineConfig {
	return c.Pipeline
}

// GetEnrichmentConfig returns content enrichment configuration
func (c *Config) GetEnrichmentConfig() EnrichmentConfig {
	return c.Enrichment
}

// GetScheduleConfig returns periodic generation configuration
func (c *Config) GetScheduleConfig() ScheduleConfig {
	return c.Schedule
}
