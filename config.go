package veogo

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/feitianbubu/veogo/adapters"
	"github.com/feitianbubu/veogo/adapters/httpjson"
	"github.com/feitianbubu/veogo/adapters/mock"
)

// Environment variables read by LoadConfig
const (
	EnvBaseURL  = "VEO_API_BASE_URL"
	EnvTimeout  = "VEO_HTTP_TIMEOUT"
	EnvUseMocks = "VEO_USE_MOCKS"
	EnvLogLevel = "VEO_LOG_LEVEL"
)

// Config holds deployment configuration for the client
type Config struct {
	BaseURL string
	// Timeout is applied by the HTTP transport; zero means none
	Timeout  time.Duration
	UseMocks bool
	LogLevel string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  "http://localhost:8080",
		Timeout:  0,
		UseMocks: false,
		LogLevel: "info",
	}
}

// LoadConfig reads configuration from the environment, after loading any of
// the given dotenv files that exist (".env" when none are given).
// Variables already set in the environment win over dotenv files.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	config := DefaultConfig()

	if v := os.Getenv(EnvBaseURL); v != "" {
		config.BaseURL = v
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "%s=%q: %v", EnvTimeout, v, err)
		}
		config.Timeout = d
	}

	if v := os.Getenv(EnvUseMocks); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "%s=%q: %v", EnvUseMocks, v, err)
		}
		config.UseMocks = b
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}

	return config, nil
}

// TransportType returns the transport selected by the configuration
func (c *Config) TransportType() TransportType {
	if c.UseMocks {
		return TransportMock
	}
	return TransportHTTP
}

// NewClientFromConfig creates a client with the transport the configuration selects
func NewClientFromConfig(config *Config, logger zerolog.Logger) (*Client, error) {
	if config == nil {
		return nil, ErrInvalidConfiguration
	}

	transport, err := createTransport(config.TransportType(), config, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transport")
	}

	return NewClient(config.BaseURL, transport, WithLogger(logger)), nil
}

// createTransport creates a transport instance based on the transport type
func createTransport(transportType TransportType, config *Config, logger zerolog.Logger) (Transport, error) {
	switch transportType {
	case TransportHTTP:
		return httpjson.New(&adapters.TransportConfig{
			Timeout: config.Timeout,
		}, httpjson.WithLogger(logger)), nil
	case TransportMock:
		logger.Warn().Msg("using mock transport; responses are canned")
		return mock.New(), nil
	default:
		return nil, ErrUnsupportedTransport
	}
}
