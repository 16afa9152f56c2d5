package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	JWTTTLHours int
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	MailFrom    string
	GinMode     string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "sanchalak"),
		DBPassword:  getEnv("DB_PASSWORD", "sanchalak"),
		DBName:      getEnv("DB_NAME", "sanchalak"),
		JWTSecret:   getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 72),
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnvInt("SMTP_PORT", 587),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASSWORD", ""),
		MailFrom:    getEnv("MAIL_FROM", "Sanchalak - The Task Manager <no-reply@sanchalak.app>"),
		GinMode:     getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
