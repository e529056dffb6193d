package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the API server.
type Config struct {
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`
	RedisAddr     string `mapstructure:"redis_addr"`
	HTTPPort      string `mapstructure:"http_port"`
	JWTSecret     string `mapstructure:"jwt_secret"`

	AI AIConfig `mapstructure:"ai"`
}

// AIConfig configures the Gemini-backed synthesis boundary.
type AIConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	ProfileModel    string        `mapstructure:"profile_model"`
	InsightModel    string        `mapstructure:"insight_model"`
	Timeout         time.Duration `mapstructure:"timeout"`
	DefaultLanguage string        `mapstructure:"default_language"`
}

// IsEnabled reports whether a real Gemini client can be used.
// When false, services fall back to deterministic local output.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Load reads configuration from skillbridge.yaml (if present) and the
// environment. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "skillbridge")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("http_port", "8080")
	v.SetDefault("jwt_secret", "super-secret-key-change-in-production")
	v.SetDefault("ai.profile_model", "gemini-2.0-flash")
	v.SetDefault("ai.insight_model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("ai.default_language", "en")

	bindings := map[string]string{
		"mongo_uri":           "MONGO_URI",
		"mongo_database":      "MONGO_DATABASE",
		"redis_addr":          "REDIS_ADDR",
		"http_port":           "PORT",
		"jwt_secret":          "JWT_SECRET",
		"ai.api_key":          "GEMINI_API_KEY",
		"ai.profile_model":    "GEMINI_PROFILE_MODEL",
		"ai.insight_model":    "GEMINI_INSIGHT_MODEL",
		"ai.default_language": "DEFAULT_LANGUAGE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	v.SetConfigName("skillbridge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
