package handler

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexforge/cryptohub/internal/repository"
	"hexforge/cryptohub/pkg/response"
)

type DataHandler struct {
	store  repository.KVStore
	logger *zap.Logger
}

func NewDataHandler(store repository.KVStore, logger *zap.Logger) *DataHandler {
	return &DataHandler{store: store, logger: logger}
}

// Store saves the raw request body under the path key. Overwrites silently;
// an empty body is a valid value.
func (h *DataHandler) Store(c *gin.Context) {
	key := c.Param("key")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}

	if err := h.store.Set(c.Request.Context(), key, string(body)); err != nil {
		h.logger.Error("store failed", zap.String("key", key), zap.Error(err))
		response.InternalError(c, "failed to store data")
		return
	}

	h.logger.Info("data stored", zap.String("key", key))
	response.Success(c, fmt.Sprintf("Data stored for key: %s", key))
}

func (h *DataHandler) Fetch(c *gin.Context) {
	key := c.Param("key")

	value, found, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		h.logger.Error("fetch failed", zap.String("key", key), zap.Error(err))
		response.InternalError(c, "failed to fetch data")
		return
	}
	if !found {
		h.logger.Warn("no data found", zap.String("key", key))
		response.NotFound(c, fmt.Sprintf("No data found for key: %s", key))
		return
	}

	h.logger.Info("data retrieved", zap.String("key", key))
	response.Success(c, value)
}
