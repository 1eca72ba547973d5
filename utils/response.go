package utils

import "github.com/gin-gonic/gin"

// JSONMessage writes the {message, data} envelope every success response uses.
func JSONMessage(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"message": message, "data": data})
}

// JSONError writes an error envelope; callers never see internal detail here.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
