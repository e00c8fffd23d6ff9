package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy. The frontend URL comes from
// configuration; localhost dev servers are always allowed. allowAll is a
// debug switch that opens the API to any origin.
func CORS(frontendURL string, allowAll bool) gin.HandlerFunc {
	if allowAll {
		cfg := cors.DefaultConfig()
		cfg.AllowAllOrigins = true
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		return cors.New(cfg)
	}

	origins := []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}
	if frontendURL != "" {
		origins = append([]string{frontendURL}, origins...)
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
