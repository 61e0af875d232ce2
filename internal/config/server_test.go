package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestServerConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ServerConfigFromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Addr() != "0.0.0.0:34567" {
		t.Errorf("Expected default address 0.0.0.0:34567, got %s", cfg.Addr())
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, DefaultAllowedOrigins) {
		t.Errorf("Expected default origins, got %v", cfg.AllowedOrigins)
	}
}

func TestServerConfigFromEnv_Overrides(t *testing.T) {
	cfg, err := ServerConfigFromEnv(envMap(map[string]string{
		EnvHost:           "127.0.0.1",
		EnvPort:           "8000",
		EnvAllowedOrigins: "http://a.test, ,http://b.test",
	}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Addr() != "127.0.0.1:8000" {
		t.Errorf("Expected address 127.0.0.1:8000, got %s", cfg.Addr())
	}
	expected := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, expected) {
		t.Errorf("Expected origins %v, got %v", expected, cfg.AllowedOrigins)
	}
}

func TestServerConfigFromEnv_InvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "70000"} {
		if _, err := ServerConfigFromEnv(envMap(map[string]string{EnvPort: port})); err == nil {
			t.Errorf("Expected error for port %q", port)
		}
	}
}

func TestLoadServerConfig_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvPort+"=9100\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Setenv(EnvPort, "")
	os.Unsetenv(EnvPort)

	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Expected port from .env 9100, got %d", cfg.Port)
	}
}

func TestLoadServerConfig_MissingFile(t *testing.T) {
	t.Setenv(EnvPort, "9200")

	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Port != 9200 {
		t.Errorf("Expected port 9200, got %d", cfg.Port)
	}
}
