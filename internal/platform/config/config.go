package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`

	// Upload Relay
	UploadStorage     string // "local" or "s3"
	UploadDir         string
	UploadMaxFileSize int64 // bytes
	UploadMaxFiles    int
	UploadTimeout     time.Duration

	S3Bucket        string `mapstructure:"S3_BUCKET"`
	S3Region        string `mapstructure:"S3_REGION"`
	S3AccessKey     string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey     string `mapstructure:"S3_SECRET_KEY"`
	S3BaseEndpoint  string `mapstructure:"S3_BASE_ENDPOINT"`
	S3PublicBaseURL string `mapstructure:"S3_PUBLIC_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "720h") // 30 days
	viper.SetDefault("JWT_ISSUER", "blog-backend")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("UPLOAD_STORAGE", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_MAX_FILE_SIZE_MB", 5)
	viper.SetDefault("UPLOAD_MAX_FILES", 5)
	viper.SetDefault("UPLOAD_TIMEOUT", "10s")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_REGION", "")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_BASE_ENDPOINT", "")
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Token lifetime; the token is the sole authentication proof and there
	// is no server-side revocation, so it stays valid until this elapses.
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 30
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google login will not function.")
	}

	cfg.UploadStorage = viper.GetString("UPLOAD_STORAGE")
	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	cfg.UploadMaxFileSize = viper.GetInt64("UPLOAD_MAX_FILE_SIZE_MB") * 1024 * 1024
	cfg.UploadMaxFiles = viper.GetInt("UPLOAD_MAX_FILES")

	uploadTimeoutStr := viper.GetString("UPLOAD_TIMEOUT")
	uploadTimeout, err := time.ParseDuration(uploadTimeoutStr)
	if err != nil {
		uploadTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for UPLOAD_TIMEOUT ('%s'). Defaulting to %s.\n", uploadTimeoutStr, uploadTimeout.String())
	}
	cfg.UploadTimeout = uploadTimeout

	cfg.S3Bucket = viper.GetString("S3_BUCKET")
	cfg.S3Region = viper.GetString("S3_REGION")
	cfg.S3AccessKey = viper.GetString("S3_ACCESS_KEY")
	cfg.S3SecretKey = viper.GetString("S3_SECRET_KEY")
	cfg.S3BaseEndpoint = viper.GetString("S3_BASE_ENDPOINT")
	cfg.S3PublicBaseURL = viper.GetString("S3_PUBLIC_BASE_URL")

	if cfg.UploadStorage == "s3" && (cfg.S3Bucket == "" || cfg.S3Region == "") {
		log.Println("Warning: UPLOAD_STORAGE is 's3' but S3_BUCKET/S3_REGION are not fully set.")
	}

	return cfg, nil
}
