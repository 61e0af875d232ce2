package config

import "testing"

func TestResolveAPIBaseURL(t *testing.T) {
	tests := []struct {
		hostname   string
		production bool
		expected   string
	}{
		{"localhost", false, DevelopmentAPIURL},
		{"127.0.0.1", false, DevelopmentAPIURL},
		{"localhost", true, ProxyBaseURL},
		{ProductionHost, false, ProxyBaseURL},
		{"callshot.internal", false, ProxyBaseURL},
		{"", false, ProxyBaseURL},
	}

	for _, test := range tests {
		result := ResolveAPIBaseURL(test.hostname, test.production)
		if result != test.expected {
			t.Errorf("ResolveAPIBaseURL(%q, %v) = %s, expected %s", test.hostname, test.production, result, test.expected)
		}
	}
}

func TestAbsoluteBaseURL(t *testing.T) {
	tests := []struct {
		hostname string
		base     string
		expected string
	}{
		{"example.org", "/api", "http://example.org/api"},
		{"", "/api", "http://" + ProductionHost + "/api"},
		{"example.org", DevelopmentAPIURL, DevelopmentAPIURL},
	}

	for _, test := range tests {
		result := AbsoluteBaseURL(test.hostname, test.base)
		if result != test.expected {
			t.Errorf("AbsoluteBaseURL(%q, %q) = %s, expected %s", test.hostname, test.base, result, test.expected)
		}
	}
}
