package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Every field can be set
// from the YAML file or overridden by its environment variable.
type Config struct {
	// Environment selects logger presets (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains the settings of the API server used by the app screens.
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request; it must exceed Session.Delay
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Store configures the secure local key-value store.
	Store struct {
		// Driver is "sqlite" for a database file or "memory" to keep nothing across restarts
		Driver string `env:"STORE_DRIVER" env-default:"sqlite" yaml:"driver"`
		// Path is the SQLite database file
		Path string `env:"STORE_PATH" env-default:"data/guide.db" yaml:"path"`
		// Secret is the passphrase the value encryption key is derived from
		Secret string `env:"STORE_SECRET" env-default:"change-me" yaml:"secret"`
		// BusyTimeout is how long to wait on a locked database
		BusyTimeout time.Duration `env:"STORE_BUSY_TIMEOUT" env-default:"5s" yaml:"busyTimeout"`
	} `yaml:"store"`

	Session struct {
		// Delay is the simulated network latency of login and register
		Delay time.Duration `env:"SESSION_DELAY" env-default:"1s" yaml:"delay"`
		// MinPasswordLength is the shortest accepted password
		MinPasswordLength int `env:"SESSION_MIN_PASSWORD_LENGTH" env-default:"6" yaml:"minPasswordLength"`
		// AvatarURL is the placeholder avatar given to new users
		AvatarURL string `env:"SESSION_AVATAR_URL" env-default:"https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=200" yaml:"avatarUrl"` //nolint: lll
	} `yaml:"session"`

	Notifications struct {
		// WelcomeTitle and WelcomeBody make up the notification sent after a session is created
		WelcomeTitle string `env:"NOTIFICATIONS_WELCOME_TITLE" env-default:"Welcome to Tunisia" yaml:"welcomeTitle"`
		WelcomeBody  string `env:"NOTIFICATIONS_WELCOME_BODY" env-default:"Start exploring the 24 governorates." yaml:"welcomeBody"` //nolint: lll
	} `yaml:"notifications"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the YAML file at configPath, applies environment overrides and
// defaults, and returns the result.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv builds the configuration from defaults and environment variables
// only, for runs without a config file.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read env: %w", err)
	}

	return &cfg, nil
}
