package app

import (
	"net/url"
	"strings"

	"github.com/brightpage/admin-core/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// newCORS builds the CORS policy. Development allows every origin so local
// frontends work out of the box; production restricts to the configured
// origin patterns.
func newCORS(cfg *config.AppConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}

	if cfg.IsDev() || len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
		return cors.New(corsConfig)
	}

	patterns := cfg.AllowedOrigins
	corsConfig.AllowOriginFunc = func(origin string) bool {
		return originAllowed(patterns, origin)
	}
	return cors.New(corsConfig)
}

func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, p := range patterns {
		if hostMatches(p, host) {
			return true
		}
	}
	return false
}

// hostMatches compares a configured pattern against a request's origin host.
// "*.example.com" matches any subdomain, "localhost:*" matches any port.
func hostMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	default:
		return false
	}
}
