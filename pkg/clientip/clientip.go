package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in priority order. CDN headers are checked before
// generic proxy headers because they are set by the edge itself
// and are harder to spoof.
var headerPriority = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP address from the request.
// Proxy headers are checked in priority order and the first valid IP wins.
// Falls back to the raw RemoteAddr when no header yields a usable address.
func GetIP(r *http.Request) string {
	for _, header := range headerPriority {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may carry a chain "client, proxy1, proxy2";
		// the leftmost entry is the original client.
		if header == "X-Forwarded-For" {
			value, _, _ = strings.Cut(value, ",")
		}

		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// normalize validates and canonicalizes an IP string.
// Returns "" for invalid addresses and for 0.0.0.0, which signals
// the absence of a valid client IP.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
