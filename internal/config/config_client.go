package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ClientConfig holds settings of the command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the task server
	// (e.g. "http://localhost:8080").
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Token is a previously issued bearer token used for task commands.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// SessionFile is where login and register save the issued token for
	// later commands. Empty means task-keeper/session.json under the user
	// config directory; ":memory:" keeps the session for one invocation.
	// Env: CLIENT_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// GetClientConfig builds and validates the client configuration from
// CLIENT_* environment variables overridden by the global flags in args.
// It returns the arguments left after the flags, i.e. the subcommand.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := new(ClientConfig)
	if err := parseEnvWithPrefix(cfg, "CLIENT_"); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerAddress, "server", cfg.ServerAddress, "Server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "Bearer token")
	fs.StringVar(&cfg.SessionFile, "session", cfg.SessionFile, "Session file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
