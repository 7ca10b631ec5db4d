package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

func ProvideConfig() Config {
	return Config{
		Hostname: requireEnv("HOSTNAME"),
		Port:     optionalEnvAsInt("PORT", 8080),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Session: Session{
			SecretKey:         requireEnv("SESSION_SECRET_KEY"),
			ExpirationSeconds: optionalEnvAsInt("SESSION_EXPIRATION_SECONDS", 60*60*24*30),
		},
		// tracing is off when no collector is configured
		JaegerURL: os.Getenv("JAEGER_URL"),
	}
}

type Config struct {
	Hostname   string
	Port       int
	Postgresql Postgresql
	Session    Session
	JaegerURL  string
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

func (p Postgresql) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", p.Host, p.Username, p.Password, p.DatabaseName, p.Port)
}

type Session struct {
	SecretKey         string
	ExpirationSeconds int
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}

func optionalEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}
