package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// serverError logs the real cause and sends the caller a generic body; no
// internal identifiers or traces leave the process.
func serverError(c *gin.Context, log *zap.Logger, err error) {
	log.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
