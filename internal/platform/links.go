package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// Allowed link schemes
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// ParseExternalURL validates a link taken from API data before it is
// handed to the OS browser. Only absolute http(s) URLs with a host pass.
func ParseExternalURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case SchemeHTTP, SchemeHTTPS:
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("URL has no host: %q", raw)
	}
	return u, nil
}

// DisplayHost returns the host of a link without a leading "www.", for
// labels such as "View original on example.com".
func DisplayHost(u *url.URL) string {
	if u == nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
