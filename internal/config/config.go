package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultArchiveURL = "https://www.npr.org/series/tiny-desk-concerts/archive"

type Config struct {
	Output string `yaml:"output"`
	Debug  bool   `yaml:"debug"`

	UserAgent        string `yaml:"user_agent"`
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
	TolerateStatus   bool   `yaml:"tolerate_status"`
	CloudflareBypass bool   `yaml:"cloudflare_bypass"`

	ArchiveURL string `yaml:"archive_url"`
	NoProgress bool   `yaml:"no_progress"`
}

type Options struct {
	IgnoreConfig     bool
	Debug            bool
	Output           string
	UserAgent        string
	TimeoutSeconds   int
	TolerateStatus   bool
	CloudflareBypass bool
	ArchiveURL       string
	NoProgress       bool
}

func DefaultConfig() *Config {
	return &Config{
		Output:     ".",
		ArchiveURL: DefaultArchiveURL,
	}
}

// Timeout is zero when no timeout is configured.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadMerged reads the active profile and applies opts on top. The second
// return value describes where the config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Debug {
		c.Debug = true
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.TolerateStatus {
		c.TolerateStatus = true
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.ArchiveURL != "" {
		c.ArchiveURL = o.ArchiveURL
	}
	if o.NoProgress {
		c.NoProgress = true
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = "."
	}
	if c.ArchiveURL == "" {
		c.ArchiveURL = DefaultArchiveURL
	}
	if c.TimeoutSeconds < 0 {
		c.TimeoutSeconds = 0
	}
}

func (c *Config) Print() {
	fmt.Printf(" -output: %s\n", c.Output)
	fmt.Printf(" -archive_url: %s\n", c.ArchiveURL)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.TimeoutSeconds > 0 {
		fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	}
	if c.TolerateStatus {
		fmt.Printf(" -tolerate_status: %t\n", c.TolerateStatus)
	}
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.NoProgress {
		fmt.Printf(" -no_progress: %t\n", c.NoProgress)
	}
}
