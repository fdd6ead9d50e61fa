package utils

import "github.com/gin-gonic/gin"

// Resource payloads are returned as-is; these helpers cover the
// status/message envelope every non-payload response uses.

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "success", "message": message})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}
