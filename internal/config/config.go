// Package config resolves the three startup scalars the server needs:
// the catalog file path, the UDP port, and the reservation timeout.
// Values come from CLI flags first, then environment variables (read
// with os.Getenv, with an optional .env overlay loaded by godotenv),
// then the spec's documented defaults (spec.md §6).
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	MinPort     = 0
	MaxPort     = 65535
	DefaultPort = 2022

	MinTimeout     = 1
	MaxTimeout     = 86400
	DefaultTimeout = 5
)

// Config holds the resolved startup configuration.
type Config struct {
	File    string
	Port    uint16
	Timeout uint32
}

// envFile, envPort, and envTimeout are the environment variable names
// config falls back to when a CLI flag is not set, mirroring the
// teacher's TICKET_SERVICE_URL / USER_SERVICE_URL-style naming.
const (
	envFile    = "TICKET_SERVER_FILE"
	envPort    = "TICKET_SERVER_PORT"
	envTimeout = "TICKET_SERVER_TIMEOUT"
)

// Load parses args (normally os.Args[1:]) and layers them over
// environment variables and the documented defaults. It returns an
// error for any missing or out-of-range value; callers should treat
// that as a fatal startup error (spec.md §6).
func Load(args []string) (Config, error) {
	// godotenv.Load is a no-op (returns an error we ignore) when no
	// .env file is present; real environment variables are then used
	// as they are.
	_ = godotenv.Load()

	// -1 is the "not provided" sentinel, since 0 is itself a valid port
	// and flag has no uint equivalent of a nilable value.
	fs := flag.NewFlagSet("ticket-server", flag.ContinueOnError)
	file := fs.String("f", os.Getenv(envFile), "path to the event catalog file (required)")
	port := fs.Int("p", -1, "UDP port to listen on")
	timeout := fs.Int("t", -1, "reservation hold timeout, in seconds")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{File: *file}

	resolvedPort := *port
	if resolvedPort < 0 {
		if v := os.Getenv(envPort); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", envPort, err)
			}
			resolvedPort = parsed
		} else {
			resolvedPort = DefaultPort
		}
	}
	if resolvedPort < MinPort || resolvedPort > MaxPort {
		return Config{}, fmt.Errorf("port %d out of range %d-%d", resolvedPort, MinPort, MaxPort)
	}
	cfg.Port = uint16(resolvedPort)

	resolvedTimeout := *timeout
	if resolvedTimeout < 0 {
		if v := os.Getenv(envTimeout); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", envTimeout, err)
			}
			resolvedTimeout = parsed
		} else {
			resolvedTimeout = DefaultTimeout
		}
	}
	if resolvedTimeout < MinTimeout || resolvedTimeout > MaxTimeout {
		return Config{}, fmt.Errorf("timeout %d out of range %d-%d", resolvedTimeout, MinTimeout, MaxTimeout)
	}
	cfg.Timeout = uint32(resolvedTimeout)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.File == "" {
		return fmt.Errorf("file argument is required (-f or %s)", envFile)
	}
	if _, err := os.Stat(c.File); err != nil {
		return fmt.Errorf("file %q: %w", c.File, err)
	}
	return nil
}
