package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// placeholderJWTSecret is the value shipped in the sample config; it must
// never sign tokens in production.
const placeholderJWTSecret = "change-me"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		BasePath string `yaml:"base_path"` // local uploads directory
		BaseURL  string `yaml:"base_url"`  // public URL prefix for uploaded files
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"` // bytes
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	Contact struct {
		SMTPHost      string `yaml:"smtp_host"`
		SMTPPort      int    `yaml:"smtp_port"`
		SMTPUser      string `yaml:"smtp_user"`
		SMTPPassword  string `yaml:"smtp_password"`
		FromEmail     string `yaml:"from_email"`
		Recipient     string `yaml:"recipient"` // where contact-form submissions go
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"contact"`

	Tracking struct {
		URL string `yaml:"url"` // external container-tracking portal
	} `yaml:"tracking"`

	AdminSetupKey      string `yaml:"admin_setup_key"` // shared secret for /auth/create-admin
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, then lets environment variables win.
// DATABASE_URL alone is enough to boot (test mode).
func LoadConfig() {
	var cfg Config

	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	} else if os.Getenv("DATABASE_URL") == "" {
		log.Fatalf("Failed to open config file at %s: %v", configPath, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	AppConfig = &cfg
}

// validate refuses configurations that must not reach a live deployment.
func validate(cfg *Config) error {
	if cfg.Server.Env == "production" {
		if cfg.JWT.Secret == "" {
			return errors.New("jwt.secret must be set in production")
		}
		if cfg.JWT.Secret == placeholderJWTSecret {
			return errors.New("jwt.secret is still the sample placeholder; set a real secret")
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("ADMIN_SETUP_KEY"); v != "" {
		cfg.AdminSetupKey = v
	}
	if v := os.Getenv("FIRST_ADMIN_EMAIL"); v != "" {
		cfg.FirstAdminEmail = v
	}
	if v := os.Getenv("FIRST_ADMIN_PASSWORD"); v != "" {
		cfg.FirstAdminPassword = v
	}
	if v := os.Getenv("TRACKING_URL"); v != "" {
		cfg.Tracking.URL = v
	}
	if v := os.Getenv("CONTACT_RECIPIENT"); v != "" {
		cfg.Contact.Recipient = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
			"application/pdf",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}
	}
	if cfg.Contact.SubjectPrefix == "" {
		cfg.Contact.SubjectPrefix = "[Website Contact]"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
