package config

import (
	"fmt"
	"net/url"
	"time"
)

// CurrentVersion is the settings file format version
const CurrentVersion = 1

// DefaultCalculatorTimeout applies when the file has no calculator timeout
const DefaultCalculatorTimeout = 10 * time.Second

// Settings is the whole settings file.
type Settings struct {
	Version    int         `yaml:"version"`
	Calculator *Calculator `yaml:"calculator,omitempty"`
	Server     *Server     `yaml:"server,omitempty"`
	Logging    *Logging    `yaml:"logging,omitempty"`
	Discovery  *Discovery  `yaml:"discovery,omitempty"`
}

// Calculator holds the client side of the calculation exchange.
type Calculator struct {
	Endpoint string         `yaml:"endpoint"`          // Base URL, e.g. http://localhost:3000
	Timeout  *time.Duration `yaml:"timeout,omitempty"` // Per-request timeout, 0 = none
}

// RequestTimeout returns the per-request timeout, or the default when unset.
func (c *Calculator) RequestTimeout() time.Duration {
	if c.Timeout == nil {
		return DefaultCalculatorTimeout
	}
	return *c.Timeout
}

// SetTimeout records an explicit per-request timeout.
func (c *Calculator) SetTimeout(d time.Duration) {
	c.Timeout = &d
}

// Server holds the reference calculator service settings.
type Server struct {
	Host      string `yaml:"host"`      // Empty = all interfaces
	Port      int    `yaml:"port"`      // Listen port
	Advertise bool   `yaml:"advertise"` // Announce the service over mDNS
	Instance  string `yaml:"instance,omitempty"`
}

// Logging holds logger settings. Level "" keeps logging silent.
type Logging struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"` // Log destination for the terminal form
}

// Discovery holds mDNS browse settings.
type Discovery struct {
	Timeout time.Duration `yaml:"timeout"`
}

// NewSettings returns the built-in defaults.
func NewSettings() *Settings {
	timeout := DefaultCalculatorTimeout
	return &Settings{
		Version: CurrentVersion,
		Calculator: &Calculator{
			Endpoint: "http://localhost:3000",
			Timeout:  &timeout,
		},
		Server: &Server{
			Port:      3000,
			Advertise: true,
		},
		Logging: &Logging{},
		Discovery: &Discovery{
			Timeout: 5 * time.Second,
		},
	}
}

// applyDefaults fills sections missing from a loaded file.
func (s *Settings) applyDefaults() {
	defaults := NewSettings()
	if s.Calculator == nil {
		s.Calculator = defaults.Calculator
	}
	if s.Calculator.Endpoint == "" {
		s.Calculator.Endpoint = defaults.Calculator.Endpoint
	}
	if s.Calculator.Timeout == nil {
		s.Calculator.Timeout = defaults.Calculator.Timeout
	}
	if s.Server == nil {
		s.Server = defaults.Server
	}
	if s.Server.Port == 0 {
		s.Server.Port = defaults.Server.Port
	}
	if s.Logging == nil {
		s.Logging = defaults.Logging
	}
	if s.Discovery == nil {
		s.Discovery = defaults.Discovery
	}
	if s.Discovery.Timeout <= 0 {
		s.Discovery.Timeout = defaults.Discovery.Timeout
	}
}

// Validate checks values that would make commands fail later.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if s.Calculator != nil {
		if err := ValidateEndpoint(s.Calculator.Endpoint); err != nil {
			return err
		}
		if t := s.Calculator.RequestTimeout(); t < 0 {
			return fmt.Errorf("calculator timeout cannot be negative: %s", t)
		}
	}
	if s.Server != nil && (s.Server.Port < 1 || s.Server.Port > 65535) {
		return fmt.Errorf("server port must be 1-65535, got %d", s.Server.Port)
	}
	return nil
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid calculator endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid calculator endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid calculator endpoint %q: missing host", endpoint)
	}
	return nil
}
