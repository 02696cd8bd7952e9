package utils

import "github.com/gin-gonic/gin"

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"code": code, "message": message})
}

func ErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"code": code, "message": message, "data": data})
}
