package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

// RecoveryMiddleware пишет панику в logs/panics.log и отвечает 500.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, "HTTP Request")

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		c.Abort()
	})
}
