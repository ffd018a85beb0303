package cliparse

import (
	"flag"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// UserConfig configures the adduser command. The store settings read the
// same COVID_* variables as the server.
type UserConfig struct {
	DatabaseType string `koanf:"database_type" validate:"oneof=sqlite postgres"`
	DatabaseURL  string `koanf:"database_url" validate:"required"`
	LogLevel     string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat    string `koanf:"log_format" validate:"oneof=json console"`
	Username     string `koanf:"username" validate:"required"`
	Password     string `koanf:"password" validate:"required"`
}

var userFlagKeys = map[string]string{
	"t":          "database_type",
	"d":          "database_url",
	"u":          "username",
	"password":   "password",
	"log-format": "log_format",
}

// ParseUserFlags builds the adduser config from the server defaults,
// COVID_* environment variables and command-line flags.
func ParseUserFlags(args []string) (UserConfig, error) {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)

	fs.String("t", "", "Database type (sqlite or postgres)")
	fs.String("d", "", "Database URL or SQLite file path")
	fs.String("u", "", "Username to create")
	fs.String("password", "", "Password for the new user")
	fs.String("log-format", "", "Log format (json or console)")

	if err := fs.Parse(args); err != nil {
		return UserConfig{}, err
	}

	k := koanf.New(".")
	for _, key := range []string{"database_type", "database_url", "log_level"} {
		if err := k.Set(key, defaults[key]); err != nil {
			return UserConfig{}, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}
	if err := k.Set("log_format", "console"); err != nil {
		return UserConfig{}, fmt.Errorf("failed to set default log_format: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return UserConfig{}, fmt.Errorf("failed to load env config: %w", err)
	}

	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr != nil {
			return
		}
		setErr = k.Set(userFlagKeys[f.Name], f.Value.String())
	})
	if setErr != nil {
		return UserConfig{}, fmt.Errorf("failed to apply flags: %w", setErr)
	}

	var cfg UserConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return UserConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return UserConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
