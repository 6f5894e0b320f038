package main

import "os"

type Config struct {
	Port        string
	Environment string

	RedisURL     string
	CartCacheTTL string

	KafkaBrokers string
	KafkaTopic   string

	SNSTopicARN   string
	S3Bucket      string
	AWSEnabled    bool

	JWTSecret string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CartCacheTTL: getEnv("CART_CACHE_TTL", "15m"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("ORDER_EVENTS_TOPIC", "order.events"),
		SNSTopicARN:  os.Getenv("ORDER_EVENTS_SNS_ARN"),
		S3Bucket:     os.Getenv("PRODUCT_IMAGES_BUCKET"),
		AWSEnabled:   os.Getenv("AWS_ENABLED") == "true",
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
