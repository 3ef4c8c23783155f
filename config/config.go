package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service reads at startup. It is loaded once
// in main and never mutated afterwards.
type Config struct {
	Port string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	EmailUser string
	EmailPass string
	// EmailFrom is the sender address; defaults to EmailUser.
	EmailFrom   string
	EmailTo     string
	SMTPHost    string
	SMTPPort    int
	SMTPTimeout time.Duration

	// ClientAppURL is the frontend base used for the branding link in proposals.
	ClientAppURL string
	// PublicBaseURL is where this service is reachable, used for /public assets in emails.
	PublicBaseURL string
	PublicDir     string

	CORSOrigins []string

	AppEnv   string
	LogLevel string
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an error;
// the real environment is used instead.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenv("PORT", "3000"),
		MongoURI:        firstNonEmpty(os.Getenv("MONGO_URI"), os.Getenv("MONGODB_URI")),
		MongoDatabase:   getenv("MONGODB_DATABASE", "onboarding"),
		MongoCollection: getenv("MONGODB_COLLECTION", "boardings"),
		EmailUser:       os.Getenv("EMAIL_USER"),
		EmailPass:       os.Getenv("EMAIL_PASS"),
		EmailFrom:       os.Getenv("EMAIL_FROM"),
		EmailTo:         os.Getenv("EMAIL_TO"),
		SMTPHost:        getenv("SMTP_HOST", "smtp.gmail.com"),
		ClientAppURL:    strings.TrimRight(getenv("CLIENT_APP_URL", "http://localhost:3000"), "/"),
		PublicDir:       getenv("PUBLIC_DIR", "./public"),
		CORSOrigins:     splitList(getenv("CORS_ORIGINS", "*")),
		AppEnv:          getenv("APP_ENV", "dev"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI must be set in the environment or .env file")
	}

	port, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid SMTP_PORT %q", os.Getenv("SMTP_PORT"))
	}
	cfg.SMTPPort = port

	timeout, err := time.ParseDuration(getenv("SMTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid SMTP_TIMEOUT %q", os.Getenv("SMTP_TIMEOUT"))
	}
	cfg.SMTPTimeout = timeout

	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.EmailUser
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	cfg.PublicBaseURL = strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port), "/")

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
