package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret is the fallback signing secret used when JWT_SECRET is unset.
// It exists only so a fresh checkout starts without ceremony; production
// deployments must set their own secret.
const DevJWTSecret = "change-this-in-production"

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	Uploads   UploadsConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type JWTConfig struct {
	Secret        string
	SecretDefault bool // true when running on the dev fallback secret
	AccessTTL     time.Duration
}

type UploadsConfig struct {
	Backend string // "local" or "minio"
	Dir     string // root directory for the local backend

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "portfolio")
	viper.SetDefault("MONGO_TIMEOUT", 10)
	viper.SetDefault("JWT_TTL_HOURS", 720) // 30 days
	viper.SetDefault("UPLOAD_BACKEND", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MINIO_BUCKET", "portfolio")
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	secret := viper.GetString("JWT_SECRET")
	secretDefault := secret == ""
	if secretDefault {
		secret = DevJWTSecret
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetString("SERVER_PORT"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGO_URL"),
			Database: viper.GetString("DB_NAME"),
			Timeout:  time.Duration(viper.GetInt("MONGO_TIMEOUT")) * time.Second,
		},
		JWT: JWTConfig{
			Secret:        secret,
			SecretDefault: secretDefault,
			AccessTTL:     time.Duration(viper.GetInt("JWT_TTL_HOURS")) * time.Hour,
		},
		Uploads: UploadsConfig{
			Backend:        viper.GetString("UPLOAD_BACKEND"),
			Dir:            viper.GetString("UPLOAD_DIR"),
			MinIOEndpoint:  viper.GetString("MINIO_ENDPOINT"),
			MinIOAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			MinIOSecretKey: viper.GetString("MINIO_SECRET_KEY"),
			MinIOBucket:    viper.GetString("MINIO_BUCKET"),
			MinIOUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	return cfg, nil
}
