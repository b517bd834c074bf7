package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "imc") {
		t.Errorf("GetConfigDir() = %v, should contain 'imc'", configDir)
	}

	if runtime.GOOS == "linux" && os.Getenv("XDG_CONFIG_HOME") == "" {
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if dir != "/tmp/xdg/imc" {
		t.Errorf("GetConfigDir() = %s, want /tmp/xdg/imc", dir)
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", path)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", s.Version, CurrentVersion)
	}
	if s.Calculator.Endpoint != "http://localhost:3000" {
		t.Errorf("Endpoint = %s", s.Calculator.Endpoint)
	}
	if got := s.Calculator.RequestTimeout(); got != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", got)
	}
	if s.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", s.Server.Port)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if s.Calculator.Endpoint != NewSettings().Calculator.Endpoint {
		t.Errorf("Endpoint = %s, want default", s.Calculator.Endpoint)
	}
}

func TestSaveTo_LoadFrom_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	s := NewSettings()
	s.Calculator.Endpoint = "http://calc.local:8080"
	s.Calculator.SetTimeout(3 * time.Second)
	s.Logging.Level = "debug"
	s.Server.Advertise = false

	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# imc configuration file") {
		t.Error("saved file should start with header comment")
	}
	if !strings.Contains(string(data), "timeout: 3s") {
		t.Errorf("durations should be written as strings, got:\n%s", data)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Calculator.Endpoint != "http://calc.local:8080" {
		t.Errorf("Endpoint = %s", loaded.Calculator.Endpoint)
	}
	if got := loaded.Calculator.RequestTimeout(); got != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", got)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", loaded.Logging.Level)
	}
	if loaded.Server.Advertise {
		t.Error("Server.Advertise should be false")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}
}

func TestLoadFrom_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\ncalculator:\n  endpoint: http://10.0.0.5:3000\n  timeout: 2s\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if got := s.Calculator.RequestTimeout(); got != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", got)
	}
	if s.Server == nil || s.Server.Port != 3000 {
		t.Errorf("Server should default, got %+v", s.Server)
	}
	if s.Discovery == nil || s.Discovery.Timeout != 5*time.Second {
		t.Errorf("Discovery should default, got %+v", s.Discovery)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "version: [",
		"wrong version": "version: 2\n",
		"bad endpoint":  "version: 1\ncalculator:\n  endpoint: ftp://x\n",
		"bad port":      "version: 1\nserver:\n  port: 70000\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("LoadFrom() should fail")
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	valid := []string{"http://localhost:3000", "https://calc.example.com"}
	for _, e := range valid {
		if err := ValidateEndpoint(e); err != nil {
			t.Errorf("ValidateEndpoint(%q) error = %v", e, err)
		}
	}

	invalid := []string{"", "localhost:3000", "ftp://host", "http://"}
	for _, e := range invalid {
		if err := ValidateEndpoint(e); err == nil {
			t.Errorf("ValidateEndpoint(%q) should fail", e)
		}
	}
}

func TestLoadFrom_CalculatorTimeout(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    time.Duration
	}{
		{"missing key gets default", "version: 1\ncalculator:\n  endpoint: http://10.0.0.5:3000\n", DefaultCalculatorTimeout},
		{"explicit zero disables", "version: 1\ncalculator:\n  endpoint: http://10.0.0.5:3000\n  timeout: 0s\n", 0},
		{"explicit value", "version: 1\ncalculator:\n  timeout: 750ms\n", 750 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			s, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if s.Calculator.Timeout == nil {
				t.Fatal("Timeout should be set after loading")
			}
			if got := s.Calculator.RequestTimeout(); got != tt.want {
				t.Errorf("Timeout = %v, want %v", got, tt.want)
			}
		})
	}
}
