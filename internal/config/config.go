package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Drafting providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Brief conditioning modes
const (
	ConditionOnBullets = "bullets"
	ConditionOnDeck    = "deck"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port                  string `json:"port" yaml:"port"`
	Host                  string `json:"host" yaml:"host"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" yaml:"request_timeout_seconds"`

	// Gemini API settings (summarization)
	GeminiAPIKey  string `json:"-" yaml:"-"` // Don't expose in JSON
	GeminiModel   string `json:"gemini_model" yaml:"gemini_model"`
	GeminiBaseURL string `json:"-" yaml:"gemini_base_url"`

	// Drafting settings
	DraftProvider    string `json:"draft_provider" yaml:"draft_provider"`
	OpenAIAPIKey     string `json:"-" yaml:"-"`
	OpenAIModel      string `json:"openai_model" yaml:"openai_model"`
	OpenAIBaseURL    string `json:"-" yaml:"openai_base_url"`
	AnthropicAPIKey  string `json:"-" yaml:"-"`
	AnthropicModel   string `json:"anthropic_model" yaml:"anthropic_model"`
	AnthropicBaseURL string `json:"-" yaml:"anthropic_base_url"`

	// Brief settings
	BriefTemperature  float64 `json:"brief_temperature" yaml:"brief_temperature"`
	BriefMaxTokens    int     `json:"brief_max_tokens" yaml:"brief_max_tokens"`
	BriefMaxWords     int     `json:"brief_max_words" yaml:"brief_max_words"`
	BriefConditioning string  `json:"brief_conditioning" yaml:"brief_conditioning"`

	// Page settings
	DefaultPersona string   `json:"default_persona" yaml:"default_persona"`
	CTAURL         string   `json:"cta_url" yaml:"cta_url"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Port:                  "8080",
		Host:                  "0.0.0.0",
		RequestTimeoutSeconds: 60,
		GeminiModel:           "gemini-1.5-flash",
		DraftProvider:         ProviderOpenAI,
		OpenAIModel:           "gpt-4o-mini",
		AnthropicModel:        "claude-haiku-4-5",
		BriefTemperature:      0.7,
		BriefMaxTokens:        700,
		BriefConditioning:     ConditionOnBullets,
		DefaultPersona:        "Generalist Seed VC, B2B SaaS focus",
		CTAURL:                "https://gumroad.com",
		AllowedOrigins:        []string{"*"},
	}
}

// Load reads configuration from environment variables, .env file and an
// optional YAML file named by CONFIG_FILE. Environment wins over the file.
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.mergeFile(path); err != nil {
			return nil, err
		}
	}

	config.Port = getEnvOrDefault("PORT", config.Port)
	config.Host = getEnvOrDefault("HOST", config.Host)
	config.RequestTimeoutSeconds = getEnvOrDefaultInt("REQUEST_TIMEOUT_SECONDS", config.RequestTimeoutSeconds)

	config.GeminiAPIKey = getEnvOrDefault("GEMINI_API_KEY", "")
	config.GeminiModel = getEnvOrDefault("GEMINI_MODEL", config.GeminiModel)
	config.GeminiBaseURL = getEnvOrDefault("GEMINI_BASE_URL", config.GeminiBaseURL)

	config.DraftProvider = strings.ToLower(getEnvOrDefault("DRAFT_PROVIDER", config.DraftProvider))
	config.OpenAIAPIKey = getEnvOrDefault("OPENAI_API_KEY", "")
	config.OpenAIModel = getEnvOrDefault("OPENAI_MODEL", config.OpenAIModel)
	config.OpenAIBaseURL = getEnvOrDefault("OPENAI_BASE_URL", config.OpenAIBaseURL)
	config.AnthropicAPIKey = getEnvOrDefault("ANTHROPIC_API_KEY", "")
	config.AnthropicModel = getEnvOrDefault("ANTHROPIC_MODEL", config.AnthropicModel)
	config.AnthropicBaseURL = getEnvOrDefault("ANTHROPIC_BASE_URL", config.AnthropicBaseURL)

	config.BriefTemperature = getEnvOrDefaultFloat("BRIEF_TEMPERATURE", config.BriefTemperature)
	config.BriefMaxTokens = getEnvOrDefaultInt("BRIEF_MAX_TOKENS", config.BriefMaxTokens)
	config.BriefMaxWords = getEnvOrDefaultInt("BRIEF_MAX_WORDS", config.BriefMaxWords)
	config.BriefConditioning = strings.ToLower(getEnvOrDefault("BRIEF_CONDITIONING", config.BriefConditioning))

	config.DefaultPersona = getEnvOrDefault("DEFAULT_PERSONA", config.DefaultPersona)
	config.CTAURL = getEnvOrDefault("CTA_URL", config.CTAURL)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = parseStringSlice(origins)
	}

	return config, config.Validate()
}

// mergeFile overlays values from a YAML file onto c
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks if required configuration values are present
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key is required"}
	}

	switch c.DraftProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return &ConfigError{Field: "OPENAI_API_KEY", Message: "OpenAI API key is required"}
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return &ConfigError{Field: "ANTHROPIC_API_KEY", Message: "Anthropic API key is required"}
		}
	default:
		return &ConfigError{Field: "DRAFT_PROVIDER", Message: fmt.Sprintf("unknown provider %q", c.DraftProvider)}
	}

	if c.BriefConditioning != ConditionOnBullets && c.BriefConditioning != ConditionOnDeck {
		return &ConfigError{Field: "BRIEF_CONDITIONING", Message: fmt.Sprintf("must be %q or %q", ConditionOnBullets, ConditionOnDeck)}
	}
	if c.BriefTemperature < 0 || c.BriefTemperature > 2 {
		return &ConfigError{Field: "BRIEF_TEMPERATURE", Message: "must be between 0 and 2"}
	}
	if c.BriefMaxTokens <= 0 {
		return &ConfigError{Field: "BRIEF_MAX_TOKENS", Message: "must be positive"}
	}
	if c.BriefMaxWords < 0 {
		return &ConfigError{Field: "BRIEF_MAX_WORDS", Message: "must not be negative"}
	}
	if c.RequestTimeoutSeconds < 0 {
		return &ConfigError{Field: "REQUEST_TIMEOUT_SECONDS", Message: "must not be negative"}
	}
	return nil
}

// DraftModel returns the model name for the configured drafting provider
func (c *Config) DraftModel() string {
	if c.DraftProvider == ProviderAnthropic {
		return c.AnthropicModel
	}
	return c.OpenAIModel
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvOrDefaultFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// parseStringSlice parses comma-separated string into slice
func parseStringSlice(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
