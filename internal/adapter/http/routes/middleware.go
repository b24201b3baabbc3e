package routes

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"crm_cotizador/internal/infrastructure/logger"
)

const headerRequestID = "X-Request-ID"

// requestLogger logs one line per request and echoes a request id.
func requestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(headerRequestID, requestID)

		c.Next()

		duration := time.Since(start)
		log := logger.WithRequest(base, c.Request.Method, c.Request.URL.Path, requestID)
		fields := []zap.Field{
			zap.String("remote_addr", c.ClientIP()),
			zap.Int("status_code", c.Writer.Status()),
			zap.Int("response_size", c.Writer.Size()),
			zap.Duration("duration", duration),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		msg := fmt.Sprintf("%s %-30s -> %3d (%s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			duration.Truncate(time.Microsecond),
		)
		if c.Writer.Status() >= 500 {
			log.Error(msg, fields...)
			return
		}
		log.Info(msg, fields...)
	}
}
