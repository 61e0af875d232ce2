package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/ytget/callshot/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir        = "export_directory"
	KeyLanguage         = "app_language"
	KeyAutoRevealExport = "auto_reveal_on_export"
	KeyAPIBaseURL       = "api_base_url"
	KeyAPIHostname      = "api_hostname"
)

// Default values
const (
	DefaultExportSubdir     = "callshot"
	DefaultLanguage         = "system"
	DefaultAutoRevealExport = true
	DefaultAPIHostname      = "localhost"
	FallbackExportDir       = "/tmp/callshot"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the directory PNG snapshots are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		downloads, err := platform.GetHomeDownloadsDir()
		if err != nil {
			dir = FallbackExportDir
		} else {
			dir = filepath.Join(downloads, DefaultExportSubdir)
		}
		s.SetExportDirectory(dir)
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

// GetAutoRevealOnExport returns whether to reveal written snapshots in the file manager
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, DefaultAutoRevealExport)
}

// SetAutoRevealOnExport sets whether to reveal written snapshots
func (s *Settings) SetAutoRevealOnExport(reveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, reveal)
}

// GetAPIHostname returns the hostname the API base URL is resolved from
func (s *Settings) GetAPIHostname() string {
	return s.app.Preferences().StringWithFallback(KeyAPIHostname, DefaultAPIHostname)
}

// SetAPIHostname sets the hostname the API base URL is resolved from
func (s *Settings) SetAPIHostname(host string) {
	s.app.Preferences().SetString(KeyAPIHostname, host)
}

// GetAPIBaseURLOverride returns an explicit API base URL, empty when unset
func (s *Settings) GetAPIBaseURLOverride() string {
	return s.app.Preferences().String(KeyAPIBaseURL)
}

// SetAPIBaseURLOverride sets an explicit API base URL; empty clears it
func (s *Settings) SetAPIBaseURLOverride(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// APIConfig returns the client configuration, resolved once from the stored
// hostname unless an explicit base URL is set
func (s *Settings) APIConfig(production bool) APIConfig {
	host := s.GetAPIHostname()
	base := s.GetAPIBaseURLOverride()
	if base == "" {
		base = ResolveAPIBaseURL(host, production)
	}
	return APIConfig{BaseURL: AbsoluteBaseURL(host, base), Timeout: DefaultAPITimeout}
}
