package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestId honours an inbound request id header or mints a fresh one, and
// echoes it back on the response.
func RequestId() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Set("requestId", requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}
