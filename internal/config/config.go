package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Expense-tracker backend
	APIBaseURL string

	// Session cookie
	CookieName   string
	CookieSecure bool

	// Retention windows for the session cookie, in days. The longer window
	// applies when the user asks to stay logged in.
	SessionDays  int
	RememberDays int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("ENV", "development"),

		// Expense-tracker backend
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),

		// Session cookie
		CookieName:   getEnv("SESSION_COOKIE_NAME", "access_token"),
		CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		SessionDays:  getEnvInt("SESSION_DAYS", 1),
		RememberDays: getEnvInt("SESSION_REMEMBER_DAYS", 7),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %t\n", key, value, defaultValue)
		return defaultValue
	}
	return b
}
