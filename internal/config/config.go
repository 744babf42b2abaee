package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AppEnv         string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	JWTExpireHours int
	FrontendURL    string
	LogFile        string
}

// IsProduction reports whether the server runs with production cookie and
// logging behavior.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:           getEnv("PORT", "9000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "joborbit"),
		JWTSecret:      getEnv("SECRET_KEY", "secret"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 8760),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
		LogFile:        getEnv("LOG_FILE", "logs/joborbit.log"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
