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
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisChatDB     int    `mapstructure:"REDIS_CHAT_DB"`
	RedisStateDB    int    `mapstructure:"REDIS_STATE_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// Gemini chat assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Firebase Cloud Messaging.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Cloudinary image hosting.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Admin dashboard credentials (static compare, password stored as bcrypt hash).
	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Business rules.
	MinimumArea           int     `mapstructure:"MINIMUM_AREA"`
	DiscountPercentage    float64 `mapstructure:"DISCOUNT_PERCENTAGE"`
	AdvancePercentage     float64 `mapstructure:"ADVANCE_PAYMENT_PERCENTAGE"`
	WhatsAppNumber        string  `mapstructure:"WHATSAPP_NUMBER"`
	PaymentAccountNumber  string  `mapstructure:"PAYMENT_ACCOUNT_NUMBER"`
	BookingFeedIntervalMS int     `mapstructure:"BOOKING_FEED_INTERVAL_MS"`
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
	viper.SetDefault("REDIS_CHAT_DB", 0)
	viper.SetDefault("REDIS_STATE_DB", 1)
	viper.SetDefault("REDIS_REMINDER_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("MINIMUM_AREA", 100)
	viper.SetDefault("DISCOUNT_PERCENTAGE", 10)
	viper.SetDefault("ADVANCE_PAYMENT_PERCENTAGE", 25)
	viper.SetDefault("WHATSAPP_NUMBER", "201013373634")
	viper.SetDefault("PAYMENT_ACCOUNT_NUMBER", "01013373634")
	viper.SetDefault("BOOKING_FEED_INTERVAL_MS", 10000)

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

// DiscountRate returns the electronic-payment discount as a fraction (e.g. 0.10).
func DiscountRate() float64 {
	return AppConfig.DiscountPercentage / 100
}

// AdvanceRate returns the advance-payment share as a fraction (e.g. 0.25).
func AdvanceRate() float64 {
	return AppConfig.AdvancePercentage / 100
}
