package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/shared/logger"
	"klevant/internal/shared/utils"
)

// Recovery converts panics into a 500 response.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("panic recovered",
			"error", recovered,
			"path", c.Request.URL.Path,
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		c.Abort()
	})
}
