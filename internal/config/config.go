package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds every setting the service reads from the environment.
// It is built once in main and handed to each component that needs it.
type AppConfig struct {
	ServerPort string `envconfig:"SERVER_PORT" default:":8080"`
	AppEnv     string `envconfig:"APP_ENV" default:"development"`

	// Supabase backend
	SupabaseURL        string `envconfig:"SUPABASE_URL" required:"true"`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_ROLE_KEY" required:"true"`

	// Token verification. Supabase issues HS256 tokens signed with the
	// project JWT secret; RS256 deployments put a PEM public key here instead.
	JWTSecret    string `envconfig:"SUPABASE_JWT_SECRET" required:"true"`
	JWTAlgorithm string `envconfig:"JWT_ALGORITHM" default:"HS256"`

	// OpenAI
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" required:"true"`
	OpenAIBaseURL string `envconfig:"OPENAI_API_BASE_URL" default:"https://api.openai.com"`

	// SMTP for invite notifications
	SMTPEmail string `envconfig:"SMTP_EMAIL"`
	SMTPPass  string `envconfig:"SMTP_PASS"`
	SMTPHost  string `envconfig:"SMTP_HOST"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
}

func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
