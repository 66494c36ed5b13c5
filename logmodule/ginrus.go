package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"
)

// Ginrus returns a gin middleware that tags every request with an id and
// logs it once it is served.
func Ginrus(name string) gin.HandlerFunc {
	logger := log.WithField("prefix", name)

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		entry := logger.WithFields(log.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
			"latency":    time.Since(start),
		})

		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case c.Writer.Status() >= 500:
			entry.Warn()
		default:
			entry.Info()
		}
	}
}

// RequestLogger returns the request scoped logger of the current request.
func RequestLogger(c *gin.Context, prefix string) *log.Entry {
	entry := log.WithField("prefix", prefix)
	if id, ok := c.Get(RequestIDKey); ok {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
