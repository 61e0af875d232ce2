package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}
	if dir != FallbackExportDir && filepath.Base(dir) != DefaultExportSubdir {
		t.Errorf("Expected default export directory to end with %s, got %s", DefaultExportSubdir, dir)
	}

	// Test setting custom value
	customDir := "/custom/snapshots"
	settings.SetExportDirectory(customDir)

	retrievedDir := settings.GetExportDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, retrievedDir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestAutoRevealOnExport(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnExport() != DefaultAutoRevealExport {
		t.Errorf("Expected default auto reveal %v", DefaultAutoRevealExport)
	}

	settings.SetAutoRevealOnExport(false)
	if settings.GetAutoRevealOnExport() {
		t.Error("Auto reveal should be disabled")
	}
}

func TestAPIConfig(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default hostname is localhost, so the backend is reached directly
	cfg := settings.APIConfig(false)
	if cfg.BaseURL != DevelopmentAPIURL {
		t.Errorf("Expected base URL %s, got %s", DevelopmentAPIURL, cfg.BaseURL)
	}
	if cfg.Timeout != DefaultAPITimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultAPITimeout, cfg.Timeout)
	}

	// Production goes through the proxy on the configured host
	settings.SetAPIHostname("example.org")
	cfg = settings.APIConfig(true)
	if cfg.BaseURL != "http://example.org/api" {
		t.Errorf("Expected proxy base URL, got %s", cfg.BaseURL)
	}

	// An explicit override wins
	settings.SetAPIBaseURLOverride("https://api.example.org")
	cfg = settings.APIConfig(true)
	if cfg.BaseURL != "https://api.example.org" {
		t.Errorf("Expected override base URL, got %s", cfg.BaseURL)
	}
}
