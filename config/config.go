package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the server.
type Configuration struct {
	Address     string `env:"ADDRESS" envDefault:":8000"`            // listen address
	AppName     string `env:"APP_NAME" envDefault:"RiseStream API"` // reported in the server header
	BodyLimitMB int    `env:"BODY_LIMIT_MB" envDefault:"200"`        // multipart uploads carry video files

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"risestream"`
	StoreTimeoutMs        int    `env:"STORE_TIMEOUT_MS" envDefault:"5000"` // deadline for every store call in a request

	// Auth
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET,required"`

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	// Rate limit
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`   // 0 disables the limiter
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"` // seconds

	// Media upload
	MediaBackend     string `env:"MEDIA_BACKEND" envDefault:"cloudinary"` // cloudinary | minio
	UploadTmpDir     string `env:"UPLOAD_TMP_DIR" envDefault:"./public/temp"`
	UploadSweepSec   int    `env:"UPLOAD_SWEEP_SEC" envDefault:"600"`   // stale temp upload sweep interval
	UploadMaxAgeSec  int    `env:"UPLOAD_MAX_AGE_SEC" envDefault:"3600"` // temp uploads older than this are removed
	CloudinaryURL    string `env:"CLOUDINARY_URL"`
	CloudinaryFolder string `env:"CLOUDINARY_FOLDER" envDefault:"risestream"`
	MinioEndpoint    string `env:"MINIO_ENDPOINT"`
	MinioAccessKey   string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey   string `env:"MINIO_SECRET_KEY"`
	MinioBucket      string `env:"MINIO_BUCKET" envDefault:"risestream-media"`
	MinioUseSSL      bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioPublicURL   string `env:"MINIO_PUBLIC_URL"` // base URL stored in documents, defaults to the endpoint

	// Response cache, empty REDIS_ADDR keeps the in-memory storage
	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
	CacheExpirationSec int    `env:"CACHE_EXPIRATION_SEC" envDefault:"30"` // 0 disables the cache
}

// StoreTimeout returns the per-request store deadline.
func (c *Configuration) StoreTimeout() time.Duration {
	if c.StoreTimeoutMs <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.StoreTimeoutMs) * time.Millisecond
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Configuration) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.CORS_Origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = append(origins, "*")
	}
	return origins
}

// getEnvPath walks up from the working directory looking for config/env/<GO_ENV>.env.
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// logger may not be initialised yet
		fmt.Printf("cannot resolve working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the env file (when one exists) and parses the process environment.
// Extra files are loaded after the default one and never override values already set.
func NewConfig(files ...string) (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("load env file %s: %w", envPath, err)
			}
		}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
