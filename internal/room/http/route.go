package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers room-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/rooms")
	{
		group.GET("", h.List)          // List rooms
		group.POST("", h.Create)       // Create room
		group.GET("/search", h.Search) // Search rooms by number, type or status
		group.GET("/stats", h.Stats)   // Occupancy counts
		group.PUT("/:id", h.Update)    // Replace room fields
		group.DELETE("/:id", h.Delete) // Delete room
	}
}
