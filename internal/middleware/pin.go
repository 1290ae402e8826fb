package middleware

import (
	"errors"
	"net/http"

	"pos_terminal/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const PinHeader = "X-Dashboard-Pin"

// DashboardPin lets a request through when no PIN is set or when the
// X-Dashboard-Pin header matches the stored one. A locked-out PIN answers 429.
func DashboardPin(pins services.PinService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := pins.Verify(c.Request.Context(), c.GetHeader(PinHeader))
		if errors.Is(err, services.ErrIncorrectPin) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Dashboard PIN required"})
			c.Abort()
			return
		}
		if errors.Is(err, services.ErrPinLocked) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if err != nil {
			logger.Error("failed to verify dashboard pin", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify dashboard PIN"})
			c.Abort()
			return
		}

		c.Next()
	}
}
