package config

import (
	"log"
	"os"
)

// Config holds all validated environment variables.
type Config struct {
	Port        string
	DBURL       string
	RedisAddr   string
	MapsKey     string
	AdminSecret string
	JWTSecret   string
}

// Envs is the global validated configuration.
var Envs Config

// LoadAndValidate fails fast when a required env key is missing.
func LoadAndValidate() {
	Envs = Config{
		Port:        getOpt("PORT", "8000"),
		DBURL:       getReq("DATABASE_URL"),
		RedisAddr:   getOpt("REDIS_ADDR", "localhost:6379"),
		MapsKey:     getReq("GOOGLE_MAPS_API_KEY"),
		AdminSecret: getReq("ADMIN_SECRET"),
		JWTSecret:   getReq("ACCESS_TOKEN_SECRET"),
	}
}

func getReq(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("FATAL: environment variable %s is required but missing", key)
	}
	return val
}

func getOpt(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
