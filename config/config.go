// config.go - Handles configuration for the project

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the service reads from the environment.
type Config struct {
	Port        string // HTTP listen port
	JWTSecret   string // Secret key for signing bearer tokens
	DatabaseURL string // Postgres DSN; when empty the service falls back to sqlite
	DBPath      string // Path to the sqlite database file (local/dev)
	FrontendURL string // Comma-separated list of allowed CORS origins

	// Default admin bootstrap. Seed values, expected to be rotated in any
	// real deployment.
	CreateAdmin   bool
	AdminName     string
	AdminEmail    string
	AdminPassword string

	MQTTBroker string // Optional MQTT broker address; empty disables the bridge
	MQTTTopic  string // Topic the event bridge publishes to
}

// Load reads config from the environment, with a .env file if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),             // Get listen port or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"), // Get JWT secret or use default
		DatabaseURL:   getEnv("DATABASE_URL", ""),          // Postgres DSN; empty means sqlite
		DBPath:        getEnv("DB_PATH", "assets.db"),      // Get sqlite path or use default
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		CreateAdmin:   getEnv("CREATE_ADMIN", "true") == "true",
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@decimetrix.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin123!"),
		MQTTBroker:    getEnv("MQTT_BROKER", ""),
		MQTTTopic:     getEnv("MQTT_TOPIC", "assets/events"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
