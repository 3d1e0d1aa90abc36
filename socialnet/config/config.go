package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"time"
)

// Supported concurrency gates.
const (
	GateLocked = "locked"
	GateSerial = "serial"
)

// Config holds the process level settings for the social network server.
type Config struct {
	// The address for the gRPC API.
	GRPCAddr string `yaml:"grpc_addr"`
	// The address for the HTTP gateway.
	HTTPAddr string `yaml:"http_addr"`
	// How often to commit automatically. Zero disables periodic commits.
	CommitInterval time.Duration `yaml:"commit_interval"`
	// Which concurrency gate guards the graph: locked or serial.
	Gate string `yaml:"gate"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns a config populated with the default settings.
func Default() *Config {
	return &Config{
		GRPCAddr:  "[::1]:50051",
		HTTPAddr:  ":8080",
		Gate:      GateLocked,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("unable to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, xerrors.Errorf("unable to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the config for errors.
func (cfg *Config) Validate() error {
	var err error
	if cfg.GRPCAddr == "" {
		err = multierror.Append(err, xerrors.Errorf("grpc address has not been specified"))
	}
	if cfg.HTTPAddr == "" {
		err = multierror.Append(err, xerrors.Errorf("http address has not been specified"))
	}
	if cfg.CommitInterval < 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for commit interval"))
	}
	if cfg.Gate != GateLocked && cfg.Gate != GateSerial {
		err = multierror.Append(err, xerrors.Errorf("unknown gate %q", cfg.Gate))
	}
	if _, lvlErr := logrus.ParseLevel(cfg.LogLevel); lvlErr != nil {
		err = multierror.Append(err, xerrors.Errorf("invalid log level: %w", lvlErr))
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		err = multierror.Append(err, xerrors.Errorf("unknown log format %q", cfg.LogFormat))
	}
	return err
}

// Logger builds the root logger described by the config. The config must
// have been validated.
func (cfg *Config) Logger(out io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if cfg.LogFormat == "json" {
		logger.SetFormatter(new(logrus.JSONFormatter))
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logrus.NewEntry(logger)
}
