package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	PreferenceStorePostgres = "postgres"
	PreferenceStoreRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Admin allow-list; the password hash is a bcrypt hash shared by the listed admins.
	AdminEmails       []string
	AdminPasswordHash string

	PreferenceStore   string
	PreferenceTTL     time.Duration
	RedisURL          string
	VisitorCookieName string

	PriceResolveConcurrency int
	RateLimit               string
	CORSAllowedOrigins      []string
	PosthogAPIKey           string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "growth-storefront")
	viper.SetDefault("ADMIN_EMAILS", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("PREFERENCE_STORE", PreferenceStorePostgres)
	viper.SetDefault("PREFERENCE_TTL", "2160h")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("VISITOR_COOKIE_NAME", "sfv")
	viper.SetDefault("PRICE_RESOLVE_CONCURRENCY", 0)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "growth-storefront"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AdminEmails = splitList(viper.GetString("ADMIN_EMAILS"))
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if len(cfg.AdminEmails) == 0 || cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_EMAILS or ADMIN_PASSWORD_HASH not set. Admin login will reject every attempt.")
	}

	cfg.PreferenceStore = strings.ToLower(viper.GetString("PREFERENCE_STORE"))
	if cfg.PreferenceStore != PreferenceStorePostgres && cfg.PreferenceStore != PreferenceStoreRedis {
		log.Printf("Warning: Invalid value for PREFERENCE_STORE ('%s'). Defaulting to %s.\n", cfg.PreferenceStore, PreferenceStorePostgres)
		cfg.PreferenceStore = PreferenceStorePostgres
	}
	// Zero or invalid keeps preferences forever.
	cfg.PreferenceTTL, _ = time.ParseDuration(viper.GetString("PREFERENCE_TTL"))
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.VisitorCookieName = viper.GetString("VISITOR_COOKIE_NAME")
	if cfg.VisitorCookieName == "" {
		cfg.VisitorCookieName = "sfv"
	}

	// Zero resolves every package's items in its own goroutine.
	cfg.PriceResolveConcurrency = viper.GetInt("PRICE_RESOLVE_CONCURRENCY")
	if cfg.PriceResolveConcurrency < 0 {
		log.Printf("Warning: Invalid value for PRICE_RESOLVE_CONCURRENCY (%d). Defaulting to unbounded.\n", cfg.PriceResolveConcurrency)
		cfg.PriceResolveConcurrency = 0
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
