package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL or host:port of the server API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientCredentials holds the login used by the client to obtain a token.
type ClientCredentials struct {
	// Login is the user name.
	// Env: CLIENT_LOGIN
	Login string `env:"LOGIN"`
	// Password is the user password.
	// Env: CLIENT_PASSWORD
	Password string `env:"PASSWORD"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Credentials contains the login used for every command.
	Credentials ClientCredentials `envPrefix:"CLIENT_"`
	// PageSize is the number of contacts shown per page by list and browse.
	// Env: CLIENT_PAGE_SIZE
	PageSize int `env:"CLIENT_PAGE_SIZE"`
	// Command is the first positional argument (e.g. "list").
	Command string
	// Args holds the positional arguments after Command.
	Args []string
}

// GetClientConfig builds and validates the client configuration from the
// environment and the process arguments. Flags override environment values.
// An optional .env file in the working directory extends the environment.
func GetClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		PageSize: 10,
	}

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "Server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.Credentials.Login, "u", cfg.Credentials.Login, "Login")
	fs.StringVar(&cfg.Credentials.Password, "p", cfg.Credentials.Password, "Password")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Contacts per page")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Args = rest[1:]
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
