package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the HTTP server and the refresher.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	SupabaseURL string `env:"SUPABASE_URL,required"`
	// The service key has gone by several names across deployments.
	SupabaseServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseServiceKey     string `env:"SUPABASE_SERVICE_KEY"`
	SupabaseAnonKey        string `env:"SUPABASE_ANON_KEY"`
	// When set, bearer tokens are verified locally instead of through GoTrue.
	SupabaseJWTSecret   string `env:"SUPABASE_JWT_SECRET"`
	StripePriceID       string `env:"STRIPE_PRICE_ID"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	ViralityRefreshCron string `env:"VIRALITY_REFRESH_CRON" envDefault:"0 */6 * * *"`
	RefreshWorkers      int    `env:"REFRESH_WORKERS" envDefault:"3"`
	RefreshQueueSize    int    `env:"REFRESH_QUEUE_SIZE" envDefault:"50"`
}

// Load reads optional dotenv files (".env" when none are named) and then
// parses the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ServiceKey() == "" {
		return nil, fmt.Errorf("one of SUPABASE_SERVICE_ROLE_KEY, SUPABASE_SERVICE_KEY or SUPABASE_ANON_KEY must be set")
	}
	cfg.SupabaseURL = strings.TrimRight(cfg.SupabaseURL, "/")
	return cfg, nil
}

// ServiceKey returns the most privileged Supabase key configured.
func (c *Config) ServiceKey() string {
	for _, k := range []string{c.SupabaseServiceRoleKey, c.SupabaseServiceKey, c.SupabaseAnonKey} {
		if k != "" {
			return k
		}
	}
	return ""
}

// UsingAnonKey reports whether only the anonymous key is available.
func (c *Config) UsingAnonKey() bool {
	return c.SupabaseServiceRoleKey == "" && c.SupabaseServiceKey == ""
}

// ListenAddr is the address the HTTP server binds.
func (c *Config) ListenAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
