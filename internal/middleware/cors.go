package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS creates a middleware for the browser-facing API, restricted to
// the configured origins.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Admin-Password"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}

	return cors.New(config)
}

// CORSAllowAll creates a wildcard CORS middleware for the sheet proxy
// endpoint, which external consumers (chatbot, gallery) read from other
// domains.
func CORSAllowAll() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          24 * time.Hour,
	}

	return cors.New(config)
}

// CORSRouted applies the wildcard policy to the sheet proxy path and the
// origin-restricted policy everywhere else. It must be mounted globally
// with router.Use: preflight OPTIONS requests have no registered route,
// and only global middleware runs on Gin's no-route path.
func CORSRouted(sheetsPath string, allowedOrigins []string) gin.HandlerFunc {
	open := CORSAllowAll()
	restricted := CORS(allowedOrigins)

	return func(c *gin.Context) {
		if c.Request.URL.Path == sheetsPath {
			open(c)
			return
		}
		restricted(c)
	}
}
