package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/aptipro/teacher-api/pkg/errors"
)

// Payload carries operation-specific top-level keys merged into the envelope
// next to "success" and "message" (e.g. "user" for login, "results" for the
// result listing).
type Payload map[string]interface{}

// OK sends a success envelope with the given status and message.
func OK(c *gin.Context, status int, message string, payload Payload) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, message string) {
	OK(c, http.StatusCreated, message, nil)
}

// Error sends a failure envelope. The underlying cause is echoed in an
// "error" field for 5xx responses only; client-fault responses never carry
// internal detail.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := gin.H{
		"success": false,
		"message": appErr.Message,
	}
	if appErr.Status >= http.StatusInternalServerError && appErr.Err != nil {
		body["error"] = appErr.Err.Error()
	}
	c.JSON(appErr.Status, body)
}
