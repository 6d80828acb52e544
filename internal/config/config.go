package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	BackendBaseURL string
	BackendAPIKey  string
	BackendTimeout time.Duration

	// PublicBaseURL is the browser-facing origin used for payment return URLs.
	PublicBaseURL string
	CORSOrigin    string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	SessionTTL   time.Duration
	CookieSecure bool

	RabbitMQURL    string
	EventsExchange string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		BackendAPIKey:  os.Getenv("BACKEND_API_KEY"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT", 15*time.Second),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         getEnv("DB_PORT", "5432"),
		SessionTTL:     getDuration("SESSION_TTL", 7*24*time.Hour),
		CookieSecure:   getBool("COOKIE_SECURE", false),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		EventsExchange: getEnv("EVENTS_EXCHANGE", "storefront_events"),
	}

	if cfg.BackendBaseURL == "" || cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// PaymentSuccessURL is where the payment widget sends the buyer after approval.
func (c *Config) PaymentSuccessURL() string {
	return c.PublicBaseURL + "/payment/success"
}

func (c *Config) PaymentFailURL() string {
	return c.PublicBaseURL + "/payment/fail"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid duration for %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return b
}
