package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexforge/cryptohub/internal/metrics"
	"hexforge/cryptohub/internal/service"
	"hexforge/cryptohub/pkg/response"
)

type CryptoHandler struct {
	cryptoService service.CryptoService
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

func NewCryptoHandler(cryptoService service.CryptoService, m *metrics.Metrics, logger *zap.Logger) *CryptoHandler {
	return &CryptoHandler{cryptoService: cryptoService, metrics: m, logger: logger}
}

type CryptoRequest struct {
	Operation string  `json:"operation" binding:"required"`
	Data      *string `json:"data"`
	Length    *int    `json:"length"`
}

type CryptoResult struct {
	Result    string `json:"result"`
	Operation string `json:"operation"`
}

func (h *CryptoHandler) Execute(c *gin.Context) {
	var req CryptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON")
		return
	}

	h.logger.Info("crypto operation requested", zap.String("operation", req.Operation))

	result, err := h.cryptoService.Execute(req.Operation, req.Data, req.Length)
	h.metrics.RecordCryptoOperation(req.Operation, err == nil)
	if err != nil {
		var unknownOp *service.UnknownOperationError
		switch {
		case errors.Is(err, service.ErrCrypto):
			// full cause stays in the log; the client gets the generic text
			h.logger.Error("crypto operation failed",
				zap.String("operation", req.Operation), zap.Error(err))
			response.InternalError(c, service.ErrCrypto.Error())
		case errors.As(err, &unknownOp),
			errors.Is(err, service.ErrNoData),
			errors.Is(err, service.ErrInvalidLength):
			response.BadRequest(c, err.Error())
		default:
			h.logger.Error("crypto operation failed",
				zap.String("operation", req.Operation), zap.Error(err))
			response.InternalError(c, "Internal Server Error")
		}
		return
	}

	response.Success(c, CryptoResult{Result: result, Operation: req.Operation})
}
