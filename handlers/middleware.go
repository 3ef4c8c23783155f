package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gautam3767/Website_Onboarding_Backend/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id, stores a scoped logger on the
// request context and logs completion.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(requestIDHeader, rid)

		reqLog := logger.L().With(
			logger.RequestID(rid),
			logger.Method(c.Request.Method),
			logger.Path(c.Request.URL.Path),
		)
		c.Request = c.Request.WithContext(logger.ToContext(c.Request.Context(), reqLog))

		c.Next()

		reqLog.Info("request completed",
			logger.Status(c.Writer.Status()),
			logger.Duration(time.Since(start)),
			logger.ClientIP(c.ClientIP()),
		)
	}
}

// Recovery turns a panic into a 500 with the usual {message} body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		logger.From(c.Request.Context()).Error("panic recovered", zap.Any("panic", rec))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
	})
}
