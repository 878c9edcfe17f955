package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration, loaded from environment
// variables with development defaults.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort    string
	AllowedOrigin string
	UploadDir     string

	// Single admin credential. When AdminPasswordHash is set it takes
	// precedence over the plaintext AdminPassword.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
}

func LoadConfig() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "lily_mily_kosmetik"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ServerPort:    getEnv("SERVER_PORT", "3001"),
		AllowedOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads-lily-mily-kosmetik"),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

// DatabaseDSN returns the postgres connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBPassword, c.DBSSLMode)
}

// JWTSecret returns the token signing key.
func JWTSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "lily-mily-dev-secret"))
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
