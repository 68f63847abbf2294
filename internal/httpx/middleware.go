package httpx

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "rid"
)

// RequestID echoes a caller-supplied X-Request-ID or mints one, and stores it
// on the context for Logger and Error.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFrom returns the ID set by RequestID, or "-" outside of it.
func RequestIDFrom(c *gin.Context) string {
	if rid := c.GetString(requestIDKey); rid != "" {
		return rid
	}
	return "-"
}

// Logger writes one access line per request. Event streams log when they close.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[http] rid=%s %s %s status=%d bytes=%d ip=%s dur=%s",
			RequestIDFrom(c), c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			c.Writer.Size(), c.ClientIP(), time.Since(start).Round(time.Microsecond))
	}
}

// Paging reads limit/offset query params, clamping limit to 1..100 (default 20).
func Paging(c *gin.Context) (limit, offset int) {
	limit = QueryInt(c, "limit", 20)
	offset = QueryInt(c, "offset", 0)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
