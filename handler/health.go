package handler

import (
	"BrainRotBGone/config"
	"BrainRotBGone/pkg/response"
	"BrainRotBGone/types"

	"github.com/gin-gonic/gin"
)

type Health struct {
	Config *config.Config
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", h.Check)
}

// Check is liveness only, dependencies are not checked.
func (h *Health) Check(c *gin.Context) {
	response.Success(c, types.HealthResponse{
		Status:  "ok",
		Message: h.Config.App.Name + " API is running",
	})
}
