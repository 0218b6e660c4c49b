package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTAlgorithm       string `mapstructure:"jwt_algorithm"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

var AppConfig *Config

// Development fallbacks. Real deployments must set JWT_SECRET.
const (
	defaultPort       = "8080"
	defaultJWTSecret  = "dev-secret-change-me"
	defaultAlgorithm  = "HS256"
	defaultExpiration = 24
)

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	// Explicitly bind environment variables for robustness
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTAlgorithm:       viper.GetString("JWT_ALGORITHM"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
	}

	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = defaultPort
	}
	if AppConfig.Server.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, using development default")
		AppConfig.Server.JWTSecret = defaultJWTSecret
	}
	if AppConfig.Server.JWTAlgorithm == "" {
		AppConfig.Server.JWTAlgorithm = defaultAlgorithm
	}
	if AppConfig.Server.JWTExpirationHours <= 0 {
		AppConfig.Server.JWTExpirationHours = defaultExpiration
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- JWT Algorithm: %s", AppConfig.Server.JWTAlgorithm)
	log.Printf("- JWT Expiration Hours: %d", AppConfig.Server.JWTExpirationHours)
	log.Printf("- Database URL: %s", func() string {
		if AppConfig.Database.URL != "" {
			return "SET"
		}
		return "NOT SET"
	}())
}
