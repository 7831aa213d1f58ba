package cors

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner-api/pkg/middleware/requestid"
)

// New configures CORS for the frontend. An empty origin list allows any origin.
func New(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowWildcard = true
		cfg.AllowCredentials = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Requested-With", requestid.HeaderKey)
	cfg.ExposeHeaders = []string{requestid.HeaderKey, "Content-Disposition"}
	cfg.MaxAge = 10 * time.Minute

	return cors.New(cfg)
}
