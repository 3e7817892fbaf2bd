package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Firebase / Firestore (the appointment-times restriction table lives there).
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`

	// Office booking policy.
	OfficeOpenTime      string `mapstructure:"OFFICE_OPEN_TIME"`
	OfficeCloseTime     string `mapstructure:"OFFICE_CLOSE_TIME"`
	SlotGranularityMin  int    `mapstructure:"SLOT_GRANULARITY_MIN"`
	AppointmentDuration int    `mapstructure:"APPOINTMENT_DURATION_MIN"`
	OfficeLocation      string `mapstructure:"OFFICE_LOCATION"`
	OfficeAddress       string `mapstructure:"OFFICE_ADDRESS"`
	OfficeTimeZone      string `mapstructure:"OFFICE_TIME_ZONE"`
	AppointmentType     string `mapstructure:"APPOINTMENT_TYPE"`
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
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "civicbook")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("OFFICE_OPEN_TIME", "9:00 AM")
	viper.SetDefault("OFFICE_CLOSE_TIME", "5:00 PM")
	viper.SetDefault("SLOT_GRANULARITY_MIN", 15)
	viper.SetDefault("APPOINTMENT_DURATION_MIN", 45)
	viper.SetDefault("OFFICE_LOCATION", "Candidate Conference Room")
	viper.SetDefault("OFFICE_ADDRESS", "96135 Nassau Place, Suite 3, Yulee, FL 32097")
	viper.SetDefault("OFFICE_TIME_ZONE", "America/New_York")
	viper.SetDefault("APPOINTMENT_TYPE", "Candidate Pre-Qualifying / Qualifying")

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
