package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS configures CORS for the dashboard web app.
// A "*" entry (or no entry) allows every origin without credentials.
func SetupCORS(allowOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        time.Hour,
	}

	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
		config.AllowCredentials = true
	}

	return cors.New(config)
}
