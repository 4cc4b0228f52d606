// Package config loads the configuration of the inference server from
// the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/envelope-zero/expense-parser/internal/textclf"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

var (
	ErrInvalidPort   = errors.New("PORT must be between 1 and 65535")
	ErrInvalidAPIURL = errors.New("API_URL is not a valid absolute URL")
)

// Config holds the server configuration.
type Config struct {
	// GinMode is passed to gin.SetMode. Defaults to release.
	GinMode string `koanf:"GIN_MODE"`

	// LogFormat is either "human" or "json". If empty, the log format
	// depends on GinMode.
	LogFormat string `koanf:"LOG_FORMAT"`

	// ModelPath is the path of the trained pipeline artifact.
	ModelPath string `koanf:"MODEL_PATH"`

	Port          int    `koanf:"PORT"`
	ListenAddress string `koanf:"LISTEN_ADDRESS"`

	// APIURL is the externally reachable base URL, used for links in responses.
	APIURL string `koanf:"API_URL"`
}

// Default returns the configuration used for everything not set in the environment.
func Default() Config {
	return Config{
		GinMode:       "release",
		ModelPath:     textclf.DefaultModelFile,
		Port:          5000,
		ListenAddress: "0.0.0.0",
		APIURL:        "http://localhost:5000",
	}
}

// Load reads the configuration from the environment.
//
// Variables from the given .env files (".env" if none are given) are added to
// the environment first, but never override variables that are already set.
// Missing .env files are ignored.
func Load(dotenvFiles ...string) (Config, error) {
	_ = godotenv.Load(dotenvFiles...)

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be checked by type alone.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w, got %d", ErrInvalidPort, c.Port)
	}

	if _, err := c.BaseURL(); err != nil {
		return err
	}

	return nil
}

// Address is the address the server listens on.
func (c Config) Address() string {
	return net.JoinHostPort(c.ListenAddress, strconv.Itoa(c.Port))
}

// BaseURL parses APIURL.
func (c Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}

	return u, nil
}
