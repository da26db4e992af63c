package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const correlationIDHeader = "X-Request-ID"

// correlationID tags every request with an id so gateway calls and
// notifications for the same order can be tied together in the logs.
// An id supplied by the caller is kept.
func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("correlation_id", id)
		c.Writer.Header().Set(correlationIDHeader, id)
		c.Next()
	}
}
