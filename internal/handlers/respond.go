package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kasijobz/backend/internal/apperr"
)

// respondError writes the failure envelope: a context message plus the
// error string, with the status taken from the error kind.
func respondError(c *gin.Context, message string, err error) {
	c.JSON(apperr.Status(err), gin.H{
		"message": message,
		"error":   err.Error(),
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"message": "KasiJobz API is up and running"})
}
