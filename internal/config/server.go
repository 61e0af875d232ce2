package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the API server
const (
	EnvHost           = "CALLSHOT_HOST"
	EnvPort           = "CALLSHOT_PORT"
	EnvAllowedOrigins = "CALLSHOT_ALLOWED_ORIGINS"
)

// Server defaults
const (
	DefaultServerHost  = "0.0.0.0"
	DefaultServerPort  = 34567
	DefaultImageWidth  = 375
	DefaultImageHeight = 812
	MaxImageWidth      = 1024
	MaxImageHeight     = 1024
	DefaultStyle       = "telegram-ui"
	DefaultTheme       = "dark"
)

// DefaultAllowedOrigins are the frontend origins accepted by CORS
var DefaultAllowedOrigins = []string{
	"http://localhost:34568",
	"http://127.0.0.1:34568",
	"http://45.120.177.170:34568",
	"https://45.120.177.170:34568",
	"http://45.120.177.170",
	"https://45.120.177.170",
}

// ServerConfig configures the image-generation API server
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// Addr returns host:port for net/http
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadServerConfig loads .env files (missing files are ignored) and reads the
// server configuration from the environment
func LoadServerConfig(files ...string) (ServerConfig, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("No .env loaded: %v", err)
	}
	return ServerConfigFromEnv(os.Getenv)
}

// ServerConfigFromEnv builds the server configuration from getenv
func ServerConfigFromEnv(getenv func(string) string) (ServerConfig, error) {
	cfg := ServerConfig{
		Host:           DefaultServerHost,
		Port:           DefaultServerPort,
		AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...),
	}

	if host := strings.TrimSpace(getenv(EnvHost)); host != "" {
		cfg.Host = host
	}

	if raw := strings.TrimSpace(getenv(EnvPort)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return cfg, fmt.Errorf("invalid %s %q", EnvPort, raw)
		}
		cfg.Port = port
	}

	if raw := getenv(EnvAllowedOrigins); strings.TrimSpace(raw) != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}

	return cfg, nil
}
