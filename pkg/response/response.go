package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API promises flat JSON bodies (message plus operation-specific
// fields), so these helpers write payloads as-is instead of wrapping
// them in an envelope.

// JSON writes the payload with the given status.
func JSON(c *gin.Context, status int, payload any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, payload)
}

// Message writes a {"message": ...} body.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, gin.H{"message": message})
}

// Error writes a {"message": ...} body with optional field details.
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := gin.H{"message": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, status int, message string, details any) {
	body := gin.H{"message": message}
	if details != nil {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}
