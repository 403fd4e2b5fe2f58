package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBSource      string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	SessionCookie string
	SessionTTL    time.Duration
	UploadDir     string
	CatalogSeed   string
	AdminUsername string
	AdminPassword string
	RabbitMQURL   string
	CORSOrigins   []string
	LogLevel      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "flavourhub.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        getDuration("JWT_TTL", 24*time.Hour),
		SessionCookie: getEnv("SESSION_COOKIE", "fh_session"),
		SessionTTL:    getDuration("SESSION_TTL", 30*time.Minute),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		CatalogSeed:   getEnv("CATALOG_SEED", "configs/catalog.yaml"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
