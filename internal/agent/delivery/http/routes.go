package http

import (
	"github.com/gin-gonic/gin"

	"ai-life-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/agent", mw.Auth(), mw.RateLimit(), h.Respond)
}
