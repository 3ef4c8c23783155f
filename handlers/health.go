package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gautam3767/Website_Onboarding_Backend/database"
	"github.com/Gautam3767/Website_Onboarding_Backend/logger"
)

// Health godoc
// @Summary Service health
// @Description Reports UP only when the submission store answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "UP"
// @Failure 503 {object} map[string]string "Database unreachable"
// @Router /health [get]
func Health(store database.SubmissionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			logger.From(c.Request.Context()).Warn("health check failed", logger.Err(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "details": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	}
}
