// Package config loads application settings from the environment.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration.
type Config struct {
	Port          int
	StoreDriver   string
	MongoURI      string
	MongoDB       string
	DatabaseDSN   string
	JWTSecret     string
	JWTTTL        time.Duration
	RabbitMQURL   string
	StaticDir     string
	CORSOrigins   string
	LogLevel      string
	LogFormat     string
	AdminEmail    string
	AdminPassword string
	SeedProducts  bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 3000)
	v.SetDefault("STORE_DRIVER", "mongo")
	v.SetDefault("MONGODB_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("MONGODB_DB", "sustain_bottles")
	v.SetDefault("DATABASE_DSN", "file:bottleshop.db?cache=shared")
	v.SetDefault("JWT_SECRET", "secret")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("STATIC_DIR", "web/public")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("SEED_PRODUCTS", false)
}

// Load reads an optional .env file, then the environment, into a Config.
func Load() Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Port:          v.GetInt("PORT"),
		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:      v.GetString("MONGODB_URI"),
		MongoDB:       v.GetString("MONGODB_DB"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTTTL:        v.GetDuration("JWT_TTL"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		StaticDir:     v.GetString("STATIC_DIR"),
		CORSOrigins:   v.GetString("CORS_ORIGINS"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		SeedProducts:  v.GetBool("SEED_PRODUCTS"),
	}
}
