package middleware

import (
	"net/http"

	"org-tenancy-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panicking handler into a 500 response and logs the panic value
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", recovered).
			Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
