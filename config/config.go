package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultEnv                = "development"
	DefaultPort               = "8080"
	DefaultTokenExpiryMin     = 10080
	DefaultDailyGrant         = 2
	DefaultMaxCredits         = 5
	DefaultGeminiModel        = "gemini-2.0-flash"
	DefaultProviderTimeoutSec = 30
	DefaultRateLimitRPS       = 1
	DefaultRateLimitBurst     = 5

	ProviderGemini   = "gemini"
	ProviderTemplate = "template"
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	JWTSecret      string
	TokenExpiryMin int

	DailyGrant int
	MaxCredits int

	ContentProvider       string
	GeminiAPIKey          string
	GeminiModel           string
	ProviderTimeoutSec    int
	RefundOnProviderError bool

	RateLimitRPS   int
	RateLimitBurst int
}

// Load reads config/.env.dev or config/.env.prod (picked by ENV) and lets real
// environment variables override the file. Missing required keys are fatal.
func Load() *Config {
	env := getEnv("ENV", DefaultEnv)

	v := viper.New()
	v.SetConfigFile(filepath.Join("config", envFile(env)))
	v.SetConfigType("env")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			log.Printf("Could not read config file, using environment only: %v", err)
		}
	}

	setDefaults(v)

	cfg := &Config{
		Env:            env,
		Port:           v.GetString("PORT"),
		DBURL:          v.GetString("DB_URL"),
		JWTSecret:      mustGet(v, "JWT_SECRET"),
		TokenExpiryMin: v.GetInt("TOKEN_EXPIRY_MIN"),

		DailyGrant: v.GetInt("DAILY_GRANT"),
		MaxCredits: v.GetInt("MAX_CREDITS"),

		GeminiAPIKey:          v.GetString("GEMINI_API_KEY"),
		GeminiModel:           v.GetString("GEMINI_MODEL"),
		ProviderTimeoutSec:    v.GetInt("PROVIDER_TIMEOUT_SEC"),
		RefundOnProviderError: v.GetBool("REFUND_ON_PROVIDER_ERROR"),

		RateLimitRPS:   v.GetInt("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
	}
	cfg.ContentProvider = resolveProvider(v.GetString("CONTENT_PROVIDER"), cfg.GeminiAPIKey)

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func envFile(env string) string {
	if env == "production" {
		return ".env.prod"
	}
	return ".env.dev"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("TOKEN_EXPIRY_MIN", DefaultTokenExpiryMin)
	v.SetDefault("DAILY_GRANT", DefaultDailyGrant)
	v.SetDefault("MAX_CREDITS", DefaultMaxCredits)
	v.SetDefault("GEMINI_MODEL", DefaultGeminiModel)
	v.SetDefault("PROVIDER_TIMEOUT_SEC", DefaultProviderTimeoutSec)
	v.SetDefault("REFUND_ON_PROVIDER_ERROR", false)
	v.SetDefault("RATE_LIMIT_RPS", DefaultRateLimitRPS)
	v.SetDefault("RATE_LIMIT_BURST", DefaultRateLimitBurst)
}

// resolveProvider falls back to static templates when no Gemini key is set.
func resolveProvider(name, apiKey string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProviderGemini:
		if apiKey == "" {
			log.Printf("CONTENT_PROVIDER=gemini but GEMINI_API_KEY is empty, using templates")
			return ProviderTemplate
		}
		return ProviderGemini
	case ProviderTemplate:
		return ProviderTemplate
	case "":
		if apiKey != "" {
			return ProviderGemini
		}
		return ProviderTemplate
	default:
		log.Printf("Unknown CONTENT_PROVIDER %q, using templates", name)
		return ProviderTemplate
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGet(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}
