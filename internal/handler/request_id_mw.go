package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-Id"

// requestIDMiddleware guarantees every request carries a request ID, echoes it
// on the response and logs the request outcome.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.Request.Header.Get(headerRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Writer.Header().Set(headerRequestID, requestID)

	c.Next()

	h.logger.Info("completed request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)
}
