package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	// AllowedOrigins is the exact-match origin whitelist.
	AllowedOrigins []string
	// AllowPrivate additionally accepts localhost and private-subnet origins.
	// Enabled outside production so local dashboards work without config edits.
	AllowPrivate bool
}

// DefaultCORSConfig returns the CORS policy for the given environment.
// Production allows only the configured dashboard origins; every other
// environment is permissive toward localhost and private subnets.
func DefaultCORSConfig(environment string) CORSConfig {
	cfg := CORSConfig{
		AllowedOrigins: []string{
			"https://smap.tantai.dev",
			"https://dashboard.smap.tantai.dev",
		},
	}
	if environment != "production" {
		cfg.AllowPrivate = true
	}
	return cfg
}

// CORS handles cross-origin requests according to cfg. Preflight OPTIONS
// requests are answered directly with 204.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(cfg, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Service-Key")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(cfg CORSConfig, origin string) bool {
	for _, allowed := range cfg.AllowedOrigins {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	if !cfg.AllowPrivate {
		return false
	}

	host := origin
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+3:]
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate()
}
