package config

import (
	"flag"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Address  string `env:"ADDRESS"`
	Host     string `env:"HOST"`
	Port     string `env:"PORT"`
	BaseURL  string `env:"BASE_URL"`
	BasePath string `env:"BASE_PATH"`

	AccessToken  string `env:"ACCESS_TOKEN"`
	AccountID    string `env:"ACCOUNT_ID"`
	SignerName   string `env:"SIGNER_NAME"`
	SignerEmail  string `env:"SIGNER_EMAIL"`
	ClientUserID string `env:"CLIENT_USER_ID"`
	RecipientID  string `env:"RECIPIENT_ID"`
	DocumentPath string `env:"DOCUMENT_PATH"`
	ReturnURL    string `env:"RETURN_URL"`

	RequestTimeout int    `env:"REQUEST_TIMEOUT"`
	LogLevel       string `env:"LOG_LEVEL"`
	LogFile        string `env:"LOG_FILE"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Parse fills config from args first and then from the environment, so env wins.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var config Config
	fs.StringVar(&config.Address, "a", "localhost:3000", "address and port to run server")
	fs.StringVar(&config.BaseURL, "b", "http://localhost:3000", "public url of this server")
	fs.StringVar(&config.BasePath, "api", "https://demo.docusign.net/restapi", "signature service REST base path")
	fs.StringVar(&config.AccessToken, "t", "", "signature service access token")
	fs.StringVar(&config.AccountID, "account", "", "signature service account id")
	fs.StringVar(&config.SignerName, "name", "", "signer full name")
	fs.StringVar(&config.SignerEmail, "email", "", "signer email")
	fs.StringVar(&config.ClientUserID, "client-user-id", "123", "embedded signer id within this app")
	fs.StringVar(&config.RecipientID, "recipient-id", "5", "recipient id of the signer")
	fs.StringVar(&config.DocumentPath, "d", "demo_documents/World_Wide_Corp_lorem.pdf", "path of the document to sign")
	fs.StringVar(&config.ReturnURL, "r", "", "url the signer is sent to after signing: empty means base url")
	fs.IntVar(&config.RequestTimeout, "timeout", 30, "signature service request timeout in seconds")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.StringVar(&config.LogFile, "log-file", "", "path of rotated log file: provide empty if want stdout only")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(&config); err != nil {
		return nil, err
	}

	if config.Host != "" || config.Port != "" {
		config.Address = overrideAddress(config.Address, config.Host, config.Port)
	}

	if config.ReturnURL == "" {
		config.ReturnURL = strings.TrimSuffix(config.BaseURL, "/") + "/"
	}

	return &config, nil
}

func ParseConfig() *Config {
	config, err := Parse(flag.CommandLine, os.Args[1:])

	if err != nil {
		log.Fatal(err)
	}

	return config
}

func overrideAddress(address, host, port string) string {
	h, p, err := net.SplitHostPort(address)
	if err != nil {
		h, p = address, ""
	}

	if host != "" {
		h = host
	}

	if port != "" {
		p = port
	}

	return net.JoinHostPort(h, p)
}
