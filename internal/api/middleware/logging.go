package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/projecthub-go/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id and logs it once it completes.
// The dispatcher stores the resolved operation name under the "operation" key.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		c.Next()

		op := c.GetString("operation")
		if op == "" {
			op = "-"
		}
		log.Printf("[HTTP] %s %s %s op=%s status=%d latency=%s",
			id, c.Request.Method, c.Request.URL.Path, op, c.Writer.Status(), time.Since(start))
	}
}

// Recovery turns a panic into the standard error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[HTTP] %s panic: %v", c.GetString("request_id"), recovered)
		response.Abort(c, http.StatusInternalServerError, "internal server error")
	})
}

// BodyLimit caps the request body at limit bytes.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			response.Abort(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
