package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "littlelemon.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
