package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eonet/internal/apperr"
	"eonet/internal/dto"
)

// writeError renders any failure into the uniform error envelope. Errors
// without a taxonomy code are logged with their cause and surfaced as a
// generic INTERNAL_SERVER_ERROR; details never reach the caller.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		if logger != nil {
			logger.Error("unhandled error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		ae = apperr.Internal()
	}
	c.JSON(ae.Status, dto.ErrorResponse{
		Error:     ae.Code,
		Message:   ae.Message,
		Code:      ae.Status,
		Timestamp: time.Now().UTC(),
		Path:      c.Request.URL.Path,
	})
}

// writeBindError distinguishes typed parse failures (unknown enum label
// in the body) from generally unreadable JSON.
func writeBindError(c *gin.Context, logger *zap.Logger, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		writeError(c, logger, ae)
		return
	}
	writeError(c, logger, apperr.MalformedJSON(err))
}
