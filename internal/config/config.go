// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vcstools/git-pr/internal/errors"
)

const envFile = ".env"

// Config holds everything an invocation needs. It is built once at startup
// and passed down explicitly; nothing reads the environment after this.
type Config struct {
	Token    string `mapstructure:"github_token"`
	Debug    bool   `mapstructure:"debug"`
	Language string `mapstructure:"git_pr_lang"`
}

// NewConfig loads configuration from environment using viper, with an
// optional .env file filling in unset variables.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	cfg := &Config{
		Token:    v.GetString("github_token"),
		Debug:    parseDebug(v.GetString("debug")),
		Language: v.GetString("git_pr_lang"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.ErrTokenMissing
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("git_pr_lang", "en")
	v.SetDefault("debug", "")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"github_token",
		"debug",
		"git_pr_lang",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// parseDebug accepts the values the DEBUG variable has historically taken.
func parseDebug(val string) bool {
	switch val {
	case "1", "true", "TRUE":
		return true
	default:
		return false
	}
}
