package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/tubespark/server/internal/errors"
)

// StatsHandler godoc
// @Summary Dashboard statistics
// @Description Returns idea counts by status, ideas saved this cycle and the idea quota
// @Tags dashboard
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/dashboard/stats [get]
// @Security BearerAuth
func StatsHandler(reporter StatsReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		stats, err := reporter.DashboardStats(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to load dashboard stats", err)
			return
		}

		c.JSON(http.StatusOK, StatsResponse{Success: true, Stats: stats})
	}
}
