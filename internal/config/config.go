package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	TutorBaseURL     string
	TutorAPIKey      string
	TutorModel       string
	JWTSecret        string
	SeedExercises    bool
	ServiceName      string
	ServiceVersion   string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "pykids_service"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		TutorBaseURL:     getEnvOrDefault("TUTOR_BASE_URL", "https://api.groq.com/openai/v1"),
		TutorAPIKey:      getEnvOrDefault("TUTOR_API_KEY", ""),
		TutorModel:       getEnvOrDefault("TUTOR_MODEL", "llama3-70b-8192"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "your-jwt-secret-key"),
		SeedExercises:    os.Getenv("SEED_EXERCISES") == "true",
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "pykids-service"),
		ServiceVersion:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
