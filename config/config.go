package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// JWT configuration.
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	TokenTTLHours int    `mapstructure:"TOKEN_TTL_HOURS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// OAuth client IDs (token audiences).
	GoogleClientID    string `mapstructure:"GOOGLE_CLIENT_ID"`
	MicrosoftClientID string `mapstructure:"MICROSOFT_CLIENT_ID"`
	AppleClientID     string `mapstructure:"APPLE_CLIENT_ID"`

	// Object storage. Backend is "s3" or "cloudinary".
	StorageBackend      string `mapstructure:"STORAGE_BACKEND"`
	AWSRegion           string `mapstructure:"AWS_REGION"`
	S3Bucket            string `mapstructure:"S3_BUCKET"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Background worker retention windows (days).
	AuditRetentionDays int `mapstructure:"AUDIT_RETENTION_DAYS"`
	ImageGraceDays     int `mapstructure:"IMAGE_GRACE_DAYS"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 120)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tripdesk")
	viper.SetDefault("TOKEN_TTL_HOURS", 12)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("STORAGE_BACKEND", "s3")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "tripdesk-experience-images")
	viper.SetDefault("AUDIT_RETENTION_DAYS", 90)
	viper.SetDefault("IMAGE_GRACE_DAYS", 30)

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
