package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver   string // sqlite, postgres or mysql
	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string

	FrontendOrigin string // single origin allowed by CORS

	SeedData         bool
	EnableReconciler bool
	ReconcileSpec    string // cron expression for the category/topic reconciler
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
		Port: getEnv("PORT", "5000"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "byteforge.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),

		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),

		SeedData:         getEnvBool("SEED_DATA", false),
		EnableReconciler: getEnvBool("ENABLE_RECONCILER", true),
		ReconcileSpec:    getEnv("RECONCILE_CRON", "0 * * * *"),
	}

	if AppConfig.DBDriver == "sqlite" && AppConfig.DBName == "byteforge.db" {
		log.Println("Warning: Using default sqlite database byteforge.db. Update DB_DRIVER/DB_NAME in your environment.")
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

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
