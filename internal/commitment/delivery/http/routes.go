package http

import (
	"github.com/gin-gonic/gin"

	"ai-life-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	commitments := rg.Group("/commitments", mw.Auth(), mw.RateLimit())
	{
		commitments.POST("/parse", h.Parse)
		commitments.POST("/conflicts", h.CheckConflicts)
		commitments.POST("/slots", h.SuggestSlots)
		commitments.GET("/patterns", h.Patterns)
		commitments.GET("/export.ics", h.ExportICS)

		commitments.POST("", h.Create)
		commitments.GET("", h.List)
		commitments.GET("/:id", h.Detail)
		commitments.PUT("/:id", h.Update)
		commitments.DELETE("/:id", h.Delete)
	}
}
