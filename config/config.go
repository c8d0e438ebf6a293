package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-sourced settings. It is parsed once in main
// and passed down; nothing reads os.Getenv after startup.
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required"`
	Port          string `env:"PORT" envDefault:"3000"`
	AdminUsername string `env:"ADMIN_USERNAME,required"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"./public"`

	// Whole-request body cap. Must leave room for two 10 MiB attachments
	// plus the form fields.
	BodyLimitMB int `env:"BODY_LIMIT_MB" envDefault:"24"`

	AllowedOrigins         string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	RateLimitMax           int    `env:"RATE_LIMIT_MAX" envDefault:"60"`
	RateLimitWindowSeconds int    `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
}

// Load reads .env (best-effort) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
