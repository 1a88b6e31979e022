package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Engine routes are stateless; task routes go through the use case.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	rg.Use(mw...)

	rg.POST("/parse", h.Parse)
	rg.POST("/dates/resolve", h.ResolveDate)
	rg.POST("/recurrence/parse", h.ParseRecurrence)
	rg.POST("/urgency/score", h.Score)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:uuid", h.Detail)
		tasks.POST("/:uuid/dependencies", h.AddDependency)
		tasks.POST("/:uuid/instances", h.GenerateInstances)
		tasks.POST("/:uuid/complete", h.Complete)
	}
}
