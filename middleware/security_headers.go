package middleware

import (
	"github.com/dmitrymomot/routekit/core/handler"
)

// SecurityHeadersConfig holds the value for each emitted security header.
// Field names follow the header names: ContentTypeOptions feeds
// X-Content-Type-Options, CrossOriginOpenerPolicy feeds
// Cross-Origin-Opener-Policy, and so on. An empty value leaves its header
// unset.
type SecurityHeadersConfig struct {
	// Skip suppresses the headers for requests where it returns true.
	Skip func(ctx handler.Context) bool

	ContentTypeOptions        string
	FrameOptions              string
	XSSProtection             string
	StrictTransportSecurity   string
	ContentSecurityPolicy     string
	ReferrerPolicy            string
	PermissionsPolicy         string
	CrossOriginOpenerPolicy   string
	CrossOriginEmbedderPolicy string
	CrossOriginResourcePolicy string

	// CustomHeaders are set verbatim after the named ones.
	CustomHeaders map[string]string

	// IsDevelopment keeps HSTS off so local plain-HTTP setups stay usable.
	IsDevelopment bool
}

// Ready-made profiles, ordered from most to least restrictive.
var (
	// StrictSecurity locks everything down: no framing, no external
	// resources, preloaded HSTS. Expect breakage with third-party embeds.
	StrictSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "DENY",
		XSSProtection:             "1; mode=block",
		StrictTransportSecurity:   "max-age=63072000; includeSubDomains; preload",
		ContentSecurityPolicy:     "default-src 'none'; script-src 'self'; style-src 'self'; img-src 'self'; font-src 'self'; connect-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
		ReferrerPolicy:            "no-referrer",
		PermissionsPolicy:         "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginResourcePolicy: "same-origin",
	}

	// BalancedSecurity trades a little strictness for compatibility with
	// inline assets and same-origin framing. The default profile.
	BalancedSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "SAMEORIGIN",
		XSSProtection:             "1; mode=block",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		ContentSecurityPolicy:     "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' data:",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		PermissionsPolicy:         "geolocation=(), microphone=(), camera=()",
		CrossOriginOpenerPolicy:   "same-origin-allow-popups",
		CrossOriginEmbedderPolicy: "",
		CrossOriginResourcePolicy: "cross-origin",
	}

	// RelaxedSecurity keeps only the headers that never break anything.
	// Reach for it when a stricter profile conflicts with the application.
	RelaxedSecurity = SecurityHeadersConfig{
		ContentTypeOptions: "nosniff",
		XSSProtection:      "1; mode=block",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// DevelopmentSecurity mirrors RelaxedSecurity with HSTS explicitly off,
	// keeping plain-HTTP localhost reachable after visiting an HTTPS build.
	DevelopmentSecurity = SecurityHeadersConfig{
		ContentTypeOptions: "nosniff",
		XSSProtection:      "1; mode=block",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      true,
	}
)

// SecurityHeaders creates a before-handler that applies the BalancedSecurity
// profile to every matched response.
func SecurityHeaders[C handler.Context]() handler.HandlerFunc[C] {
	return SecurityHeadersWithConfig[C](BalancedSecurity)
}

// SecurityHeadersWithConfig creates a security headers before-handler with
// custom configuration. Empty values leave their header unset.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.HandlerFunc[C] {
	return func(ctx C, res handler.Response) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return res
		}

		// Writer headers persist across response replacement by later handlers.
		h := ctx.ResponseWriter().Header()
		set := func(name, value string) {
			if value != "" {
				h.Set(name, value)
			}
		}

		set("X-Content-Type-Options", cfg.ContentTypeOptions)
		set("X-Frame-Options", cfg.FrameOptions)
		set("X-XSS-Protection", cfg.XSSProtection)
		if !cfg.IsDevelopment {
			set("Strict-Transport-Security", cfg.StrictTransportSecurity)
		}
		set("Content-Security-Policy", cfg.ContentSecurityPolicy)
		set("Referrer-Policy", cfg.ReferrerPolicy)
		set("Permissions-Policy", cfg.PermissionsPolicy)
		set("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
		set("Cross-Origin-Embedder-Policy", cfg.CrossOriginEmbedderPolicy)
		set("Cross-Origin-Resource-Policy", cfg.CrossOriginResourcePolicy)

		for name, value := range cfg.CustomHeaders {
			set(name, value)
		}

		return res
	}
}
