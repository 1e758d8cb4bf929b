package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkorir/dukani-api/initializers"
)

// Every response uses the same envelope: {success, message?, data?, error?}.

func sendSuccessResponse(ctx *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	ctx.JSON(status, body)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}

// sendInternalErrorResponse surfaces the raw error message; there is no
// redaction in this system.
func sendInternalErrorResponse(ctx *gin.Context, message string, err error) {
	initializers.Log.Errorw(message,
		"error", err,
		"requestId", ctx.GetString("requestId"),
		"path", ctx.Request.URL.Path,
	)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
