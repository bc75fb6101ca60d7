package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Webhook endpoint backing the agent's calendar and booking sink.
	WebhookURL string `mapstructure:"N8N_WEBHOOK_URL"`

	// Agent schedule configuration.
	AgentTimezone          string `mapstructure:"AGENT_TIMEZONE"`
	WorkStart              string `mapstructure:"WORK_START"`
	WorkEnd                string `mapstructure:"WORK_END"`
	AppointmentDurationMin int    `mapstructure:"APPOINTMENT_DURATION_MIN"`
	ScheduleBufferMin      int    `mapstructure:"SCHEDULE_BUFFER_MIN"`

	// Google API credentials.
	GeminiAPIKey             string `mapstructure:"GEMINI_API_KEY"`
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	// Mongo collection holding the listings index.
	ListingsCollection string `mapstructure:"LISTINGS_COLLECTION"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("N8N_WEBHOOK_URL", "")
	viper.SetDefault("AGENT_TIMEZONE", "America/Chicago")
	viper.SetDefault("WORK_START", "09:00")
	viper.SetDefault("WORK_END", "18:00")
	viper.SetDefault("APPOINTMENT_DURATION_MIN", 60)
	viper.SetDefault("SCHEDULE_BUFFER_MIN", 30)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("LISTINGS_COLLECTION", "listings")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
