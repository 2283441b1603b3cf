package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	DeepSeek DeepSeekConfig
	Coze     CozeConfig
	Quizgen  QuizgenConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	ConversationStore  string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret   string
	TokenExpiry time.Duration
}

type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type CozeConfig struct {
	APIKey          string
	BaseURL         string
	BotID           string
	Timeout         time.Duration
	PollMaxAttempts int
	PollInterval    time.Duration
}

type QuizgenConfig struct {
	TopicName string // internal queue topic for generation jobs
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ConversationStore:  getEnv("CONVERSATION_STORE", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:   getEnv("JWT_SECRET", ""),
			TokenExpiry: getEnvAsDuration("JWT_TOKEN_EXPIRY", 7*24*time.Hour),
		},
		DeepSeek: DeepSeekConfig{
			APIKey:  getEnv("DEEPSEEK_API_KEY", ""),
			BaseURL: getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1"),
			Model:   getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
			Timeout: getEnvAsDuration("DEEPSEEK_TIMEOUT", 60*time.Second),
		},
		Coze: CozeConfig{
			APIKey:          getEnv("COZE_API_KEY", ""),
			BaseURL:         getEnv("COZE_BASE_URL", "https://api.coze.com"),
			BotID:           getEnv("COZE_BOT_ID", ""),
			Timeout:         getEnvAsDuration("COZE_TIMEOUT", 30*time.Second),
			PollMaxAttempts: getEnvAsInt("COZE_POLL_MAX_ATTEMPTS", 30),
			PollInterval:    getEnvAsDuration("COZE_POLL_INTERVAL_MS", 2*time.Second),
		},
		Quizgen: QuizgenConfig{
			TopicName: getEnv("GENERATE_QUESTIONS_TOPIC_NAME", "GENERATE_QUESTIONS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration reads a duration. Plain integers are interpreted as
// milliseconds so values like COZE_POLL_INTERVAL_MS=2000 keep working.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	return fallback
}
