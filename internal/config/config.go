package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all service configuration, loaded from a yaml file and
// environment variables, with environment taking precedence.
type Config struct {
	HTTPAddress string

	MongoURI      string
	MongoDatabase string

	RedisAddress  string
	RedisPassword string

	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3Endpoint        string
	S3PublicBaseURL   string

	JWTSecret   string
	JWTTTLHours int

	ResendAPIKey string
	EmailFrom    string

	StripeAPIKey     string
	StripeSuccessURL string

	AssistantProvider string
	OpenAIAPIKey      string
	OpenAIModel       string
	AnthropicAPIKey   string
	AnthropicModel    string

	PDFEndpoint string
	PDFAPIKey   string

	PublicBaseURL string
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// Load reads configuration from files and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":       "HTTP_ADDRESS",
		"MongoURI":          "MONGO_URI",
		"MongoDatabase":     "MONGO_DATABASE",
		"RedisAddress":      "REDIS_ADDRESS",
		"RedisPassword":     "REDIS_PASSWORD",
		"S3AccessKeyID":     "S3_ACCESS_KEY_ID",
		"S3SecretAccessKey": "S3_SECRET_ACCESS_KEY",
		"S3Region":          "S3_REGION",
		"S3Bucket":          "S3_BUCKET",
		"S3Endpoint":        "S3_ENDPOINT",
		"S3PublicBaseURL":   "S3_PUBLIC_BASE_URL",
		"JWTSecret":         "JWT_SECRET",
		"JWTTTLHours":       "JWT_TTL_HOURS",
		"ResendAPIKey":      "RESEND_API_KEY",
		"EmailFrom":         "EMAIL_FROM",
		"StripeAPIKey":      "STRIPE_API_KEY",
		"StripeSuccessURL":  "STRIPE_SUCCESS_URL",
		"AssistantProvider": "ASSISTANT_PROVIDER",
		"OpenAIAPIKey":      "OPENAI_API_KEY",
		"OpenAIModel":       "OPENAI_MODEL",
		"AnthropicAPIKey":   "ANTHROPIC_API_KEY",
		"AnthropicModel":    "ANTHROPIC_MODEL",
		"PDFEndpoint":       "PDF_ENDPOINT",
		"PDFAPIKey":         "PDF_API_KEY",
		"PublicBaseURL":     "PUBLIC_BASE_URL",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("hyperlans_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.hyperlans")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("MongoURI", "mongodb://localhost:27017")
	v.SetDefault("MongoDatabase", "hyperlans")
	v.SetDefault("RedisAddress", "localhost:6379")
	v.SetDefault("JWTTTLHours", 24)
	v.SetDefault("S3Region", "us-east-1")
	v.SetDefault("AssistantProvider", "openai")
	v.SetDefault("OpenAIModel", "gpt-4o-mini")
	v.SetDefault("AnthropicModel", "claude-3-5-haiku-latest")
	v.SetDefault("PublicBaseURL", "http://localhost:8080")
}

func validate(config *Config) error {
	var missingVars []string

	if config.JWTSecret == "" {
		missingVars = append(missingVars, "JWT_SECRET")
	}
	if config.S3Bucket == "" {
		missingVars = append(missingVars, "S3_BUCKET")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingVars, ", "))
	}

	return nil
}
