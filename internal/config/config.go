// Package config resolves listener settings from defaults, an opt-in env file and the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultHost binds all interfaces.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the port the prompt server listens on.
	DefaultPort = "8000"
	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// EnvFileVar names the variable holding an env file path. Without it no file is read.
	EnvFileVar = "ENV_FILE"
)

// Config holds the server listener settings.
type Config struct {
	Host            string
	Port            string
	ShutdownTimeout time.Duration
}

// Addr returns the host:port pair passed to net.Listen.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Default returns the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load applies HOST, PORT and SHUTDOWN_TIMEOUT over the defaults. A .env file
// lying in the working directory is ignored; an env file is only read when
// ENV_FILE names it, and then a missing file is an error. Variables already set
// in the process environment win over the file.
func Load() (Config, error) {
	if path := os.Getenv(EnvFileVar); path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	if host := os.Getenv("HOST"); host != "" {
		cfg.Host = host
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q: must be 1-65535", port)
		}
		cfg.Port = port
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", raw)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
