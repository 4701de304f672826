package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Access policies for lesson gating
const (
	AccessPolicyOpen       = "open"       // any lesson of an enrolled course is viewable
	AccessPolicySequential = "sequential" // lesson N requires lesson N-1 completed
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string // postgres, mysql or sqlite
	DBName    string
	JWTKey    string
	SaltRound int

	AccessPolicy string // open | sequential

	SendgridAPIKey string
	EmailSender    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "8000"),
		DBDriver:  getEnv("DB_DRIVER", "postgres"),
		DBName:    getEnv("DB_NAME", "codelearn"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AccessPolicy: getEnv("ACCESS_POLICY", AccessPolicyOpen),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@codelearn.dev"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AccessPolicy != AccessPolicyOpen && AppConfig.AccessPolicy != AccessPolicySequential {
		log.Printf("Warning: Unknown ACCESS_POLICY %q, falling back to %q.", AppConfig.AccessPolicy, AccessPolicyOpen)
		AppConfig.AccessPolicy = AccessPolicyOpen
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
