package app

import (
	"net/url"
	"strings"
)

// originHost reduces an Origin header value to its host[:port] portion.
// A value that does not parse as a URL is compared as given.
func originHost(origin string) string {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(origin)
	}
	return u.Host
}

// originAllowed reports whether host matches one of the configured
// allowed_origins entries. An entry is either an exact host[:port] or a
// "*.domain" wildcard covering the domain and its subdomains.
func originAllowed(patterns []string, host string) bool {
	h := strings.ToLower(host)
	for _, pattern := range patterns {
		p := strings.ToLower(pattern)
		if p == h {
			return true
		}
		if domain, ok := strings.CutPrefix(p, "*."); ok {
			if h == domain || strings.HasSuffix(h, "."+domain) {
				return true
			}
		}
	}
	return false
}
