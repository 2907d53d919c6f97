package controller

import "github.com/gin-gonic/gin"

// ErrorResponse writes the shared error envelope.
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// SuccessResponse writes the shared success envelope.
func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"data": data,
	})
}
