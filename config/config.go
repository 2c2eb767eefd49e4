package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBName      string
	DBUser      string
	DBPassword  string

	SecretKey    string
	GeminiAPIKey string

	// ENFORCE_TOKEN_EXPIRY=true turns the stored expires_at into a hard
	// check on every token lookup. Off by default: existing deployments
	// treat expiry as housekeeping metadata only.
	EnforceTokenExpiry bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	return &Config{
		Port:               getenv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBHost:             getenv("DB_HOST", "localhost"),
		DBPort:             getenv("DB_PORT", "5432"),
		DBName:             getenv("DB_NAME", "nutrition_tracker"),
		DBUser:             getenv("DB_USER", "nutrify_user"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		SecretKey:          getenv("SECRET_KEY", "dev-secret-key-change-in-production"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		EnforceTokenExpiry: os.Getenv("ENFORCE_TOKEN_EXPIRY") == "true",
	}
}

// DSN prefers DATABASE_URL and falls back to the host/name/user/password
// tuple, matching how deployments have historically been configured.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// InitDB opens the connection pool once at process start. Handlers check
// connections out of this pool per request instead of dialing their own.
func InitDB(c *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
