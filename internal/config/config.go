package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	Storage          string
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	RedisPassword    string
	RabbitMQURI      string
	RabbitMQExchange string
	LLMAPIKey        string
	LLMBaseURL       string
	LLMModel         string
	JWTSecret        string
	AllowOrigins     string
	SeedData         bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		Storage:          getEnvOrDefault("STORAGE", "mongo"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "course_service"),
		RedisAddr:        getEnvOrDefault("REDIS_ADDR", ""),
		RedisPassword:    getEnvOrDefault("REDIS_PWD", ""),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		LLMAPIKey:        getEnvOrDefault("OPENAI_API_KEY", ""),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "gpt-4o"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "course-service-dev-secret"),
		AllowOrigins:     getEnvOrDefault("ALLOW_ORIGINS", "http://localhost:3000"),
		SeedData:         getEnvOrDefault("SEED_DATA", "true") == "true",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
