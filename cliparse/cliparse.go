package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped
// to config keys, e.g. COVID_DATABASE_URL -> database_url.
const EnvPrefix = "COVID_"

type Config struct {
	Port               int           `koanf:"port" validate:"min=1,max=65535"`
	DatabaseType       string        `koanf:"database_type" validate:"oneof=sqlite postgres"`
	DatabaseURL        string        `koanf:"database_url" validate:"required"`
	JWTSecret          string        `koanf:"jwt_secret" validate:"required"`
	TokenTTL           time.Duration `koanf:"token_ttl" validate:"min=0s"`
	LogLevel           string        `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat          string        `koanf:"log_format" validate:"oneof=json console"`
	CORSAllowedOrigins string        `koanf:"cors_allowed_origins"`
}

// AllowedOrigins splits the comma-separated CORS origin list
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

var defaults = map[string]any{
	"port":                 3000,
	"database_type":        "sqlite",
	"database_url":         "covid19IndiaPortal.db",
	"token_ttl":            "0s",
	"log_level":            "info",
	"log_format":           "json",
	"cors_allowed_origins": "*",
}

// flag name -> config key
var flagKeys = map[string]string{
	"p":           "port",
	"t":           "database_type",
	"d":           "database_url",
	"jwt-secret":  "jwt_secret",
	"token-ttl":   "token_ttl",
	"log-level":   "log_level",
	"log-format":  "log_format",
	"cors-origin": "cors_allowed_origins",
}

// ParseFlags builds the config from defaults, COVID_* environment variables
// (a .env file is loaded first if present) and finally command-line flags.
func ParseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("covid19-portal", flag.ContinueOnError)

	// Network and store config
	fs.Int("p", 0, "Server port")
	fs.String("d", "", "Database URL or SQLite file path")
	fs.String("t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.String("jwt-secret", "", "Token signing secret (prefer env)")
	fs.Duration("token-ttl", 0, "Token lifetime, 0 for no expiry")

	fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.String("log-format", "", "Log format (json or console)")
	fs.String("cors-origin", "", "Comma-separated allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	k := koanf.New(".")
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return Config{}, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load env config: %w", err)
	}

	// CLI overrides env, but only for flags that were actually passed
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr != nil {
			return
		}
		setErr = k.Set(flagKeys[f.Name], f.Value.String())
	})
	if setErr != nil {
		return Config{}, fmt.Errorf("failed to apply flags: %w", setErr)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT secret required (use -jwt-secret or COVID_JWT_SECRET env)")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
