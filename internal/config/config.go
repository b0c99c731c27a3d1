package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		Env       string `yaml:"env"`
		StaticDir string `yaml:"static_dir"` // built client assets, optional
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Auth struct {
		// Signing secret of the identity provider. Tokens are minted by
		// the provider on signup/login; this service only verifies them.
		JWTSecret string `yaml:"jwt_secret"`

		// Provider API keys: the public (anon) key is safe to hand to
		// clients talking to the provider directly; the service key is
		// privileged and must never leave the server.
		AnonKey    string `yaml:"anon_key"`
		ServiceKey string `yaml:"service_key"`
	} `yaml:"auth"`

	Storage struct {
		Type           string `yaml:"type"`             // local, s3
		BasePath       string `yaml:"base_path"`        // for local storage
		Endpoint       string `yaml:"endpoint"`         // provider's S3-compatible endpoint
		Region         string `yaml:"region"`           // for s3
		AccessKey      string `yaml:"access_key"`       // for s3
		SecretKey      string `yaml:"secret_key"`       // for s3
		PhotoBucket    string `yaml:"photo_bucket"`     // public bucket for profile photos
		DocumentBucket string `yaml:"document_bucket"`  // private bucket for verification documents
		PublicBaseURL  string `yaml:"public_base_url"`  // public URL base for the photo bucket
		SignedURLTTL   int    `yaml:"signed_url_ttl"`   // seconds, for verification documents
	} `yaml:"storage"`

	Upload struct {
		MaxPhotoSize     int64    `yaml:"max_photo_size"`     // bytes
		MaxDocumentSize  int64    `yaml:"max_document_size"`  // bytes
		PhotoTypes       []string `yaml:"photo_types"`        // allowed MIME types
		DocumentTypes    []string `yaml:"document_types"`     // allowed MIME types
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig fills AppConfig either from config/config.yaml or, when
// DATABASE_URL is set, entirely from environment variables (test and
// container deployments).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Server.StaticDir = os.Getenv("STATIC_DIR")
	cfg.Auth.JWTSecret = os.Getenv("AUTH_JWT_SECRET")
	cfg.Auth.AnonKey = os.Getenv("AUTH_ANON_KEY")
	cfg.Auth.ServiceKey = os.Getenv("AUTH_SERVICE_KEY")

	cfg.Storage.Type = os.Getenv("STORAGE_TYPE")
	cfg.Storage.BasePath = os.Getenv("STORAGE_BASE_PATH")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.PhotoBucket = os.Getenv("STORAGE_PHOTO_BUCKET")
	cfg.Storage.DocumentBucket = os.Getenv("STORAGE_DOCUMENT_BUCKET")
	cfg.Storage.PublicBaseURL = os.Getenv("STORAGE_PUBLIC_BASE_URL")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.PhotoBucket == "" {
		cfg.Storage.PhotoBucket = "profile-photos"
	}
	if cfg.Storage.DocumentBucket == "" {
		cfg.Storage.DocumentBucket = "verification-documents"
	}
	if cfg.Storage.SignedURLTTL == 0 {
		cfg.Storage.SignedURLTTL = 3600 // 1 hour
	}
	if cfg.Upload.MaxPhotoSize == 0 {
		cfg.Upload.MaxPhotoSize = 10 * 1024 * 1024 // 10MB
	}
	if cfg.Upload.MaxDocumentSize == 0 {
		cfg.Upload.MaxDocumentSize = 20 * 1024 * 1024 // 20MB
	}
	if len(cfg.Upload.PhotoTypes) == 0 {
		cfg.Upload.PhotoTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}
	if len(cfg.Upload.DocumentTypes) == 0 {
		cfg.Upload.DocumentTypes = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
