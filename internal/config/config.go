// Package config loads askgo settings from defaults, an optional YAML file,
// .env files and the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/leofalp/askgo/providers/observability/slogobs"
)

// Environment variables read by [Load].
const (
	EnvGroqAPIKey          = "GROQ_API_KEY"
	EnvGoogleAPIKey        = "GOOGLE_API_KEY"
	EnvGoogleEngineID      = "GOOGLE_SEARCH_ENGINE_ID"
	EnvModel               = "ASKGO_MODEL"
	EnvTimeout             = "ASKGO_TIMEOUT"
	EnvContinueOnAmbiguous = "ASKGO_CONTINUE_ON_AMBIGUOUS"
	EnvLogLevel            = "ASKGO_LOG_LEVEL"
	EnvLogFormat           = "ASKGO_LOG_FORMAT"
	EnvWikipediaLanguage   = "WIKIPEDIA_LANGUAGE"
)

// Config is the full askgo configuration.
type Config struct {
	Model               string          `yaml:"model"`
	Groq                GroqConfig      `yaml:"groq"`
	Google              GoogleConfig    `yaml:"google"`
	Wikipedia           WikipediaConfig `yaml:"wikipedia"`
	StrategyTimeout     time.Duration   `yaml:"strategy_timeout"`
	ContinueOnAmbiguous bool            `yaml:"continue_on_ambiguous"`
	Log                 LogConfig       `yaml:"log"`
}

type GroqConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type GoogleConfig struct {
	APIKey   string `yaml:"api_key"`
	EngineID string `yaml:"engine_id"`
	BaseURL  string `yaml:"base_url"`
}

type WikipediaConfig struct {
	BaseURL   string `yaml:"base_url"`
	Language  string `yaml:"language"`
	Sentences int    `yaml:"sentences"`
	UserAgent string `yaml:"user_agent"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Model:           "llama3-70b-8192",
		Groq:            GroqConfig{BaseURL: "https://api.groq.com/openai/v1"},
		Google:          GoogleConfig{BaseURL: "https://www.googleapis.com/customsearch/v1"},
		Wikipedia:       WikipediaConfig{Language: "en", Sentences: 2},
		StrategyTimeout: 30 * time.Second,
		Log:             LogConfig{Level: "warn", Format: "text"},
	}
}

// Load builds the configuration. path names an optional YAML file; an empty
// path skips it. envFiles default to ".env"; missing env files are ignored.
// Values already present in the process environment are never overwritten
// by env files.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(target *string, name string) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*target = v
		}
	}
	setString(&c.Groq.APIKey, EnvGroqAPIKey)
	setString(&c.Google.APIKey, EnvGoogleAPIKey)
	setString(&c.Google.EngineID, EnvGoogleEngineID)
	setString(&c.Model, EnvModel)
	setString(&c.Log.Level, EnvLogLevel)
	setString(&c.Log.Format, EnvLogFormat)
	setString(&c.Wikipedia.Language, EnvWikipediaLanguage)

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.StrategyTimeout = d
	}
	if v := os.Getenv(EnvContinueOnAmbiguous); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvContinueOnAmbiguous, err)
		}
		c.ContinueOnAmbiguous = b
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.StrategyTimeout < 0 {
		return fmt.Errorf("strategy_timeout must not be negative, got %s", c.StrategyTimeout)
	}
	if c.Wikipedia.Sentences < 0 {
		return fmt.Errorf("wikipedia.sentences must not be negative, got %d", c.Wikipedia.Sentences)
	}
	if _, err := slogobs.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != string(slogobs.FormatText) && c.Log.Format != string(slogobs.FormatJSON) {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
