package config

import (
	"strings"
	"time"
)

// API endpoints and timeouts
const (
	ProductionHost    = "45.120.177.170"
	ProxyBaseURL      = "/api"
	DevelopmentAPIURL = "http://localhost:8000"
	DefaultAPITimeout = 30 * time.Second
)

// APIConfig is the image-generation API client configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ResolveAPIBaseURL picks the API base URL for the host the app talks from.
// Production builds and the production host go through the "/api" proxy,
// loopback hosts talk to the backend directly.
func ResolveAPIBaseURL(hostname string, production bool) string {
	if production || hostname == ProductionHost {
		return ProxyBaseURL
	}
	if hostname == "localhost" || hostname == "127.0.0.1" {
		return DevelopmentAPIURL
	}
	return ProxyBaseURL
}

// AbsoluteBaseURL anchors a proxy path such as "/api" at http://hostname.
// Absolute URLs are returned unchanged.
func AbsoluteBaseURL(hostname, base string) string {
	if !strings.HasPrefix(base, "/") {
		return base
	}
	if hostname == "" {
		hostname = ProductionHost
	}
	return "http://" + hostname + base
}
