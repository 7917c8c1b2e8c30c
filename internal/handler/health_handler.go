package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"hexforge/cryptohub/pkg/response"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Version   string `json:"version"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	response.Success(c, HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
		Version:   h.version,
	})
}
