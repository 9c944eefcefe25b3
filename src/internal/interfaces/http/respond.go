package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The client contract predates proper REST status usage: most business
// failures answer 200 with {"status":"error"} and the UI branches on the
// body. Only malformed input and missing resources use 400/404.

func respondOK(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"status": "ok", "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": "error", "message": message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": message})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": message})
}

func respondInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
}
