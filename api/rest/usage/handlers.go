package usage

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "codeberg.org/tubespark/server/internal/errors"
	"codeberg.org/tubespark/server/internal/plans"
	"codeberg.org/tubespark/server/internal/quota"
)

// CheckHandler godoc
// @Summary Check one quota
// @Description Reports usage of one resource kind in the current cycle without spending anything
// @Tags usage
// @Produce json
// @Param action query string true "Resource kind" Enums(idea, script_basic, script_premium, api_call)
// @Success 200 {object} CheckResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/usage/check [get]
// @Security BearerAuth
func CheckHandler(checker LimitChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		action := c.Query("action")
		if action == "" {
			apierrors.ValidationError(c, "action is required", map[string]string{"action": "required"})
			return
		}

		kind, ok := plans.ParseKind(action)
		if !ok {
			apierrors.ValidationError(c, "unknown resource kind", map[string]string{"action": "invalid"})
			return
		}

		limit, err := checker.CheckLimit(c.Request.Context(), userID, kind)
		if err != nil {
			if errors.Is(err, quota.ErrUnknownKind) {
				apierrors.ValidationError(c, "unknown resource kind", map[string]string{"action": "invalid"})
				return
			}

			apierrors.InternalError(c, "failed to check usage", err)
			return
		}

		c.JSON(http.StatusOK, CheckResponse{Success: true, Usage: limit})
	}
}

// SummaryHandler godoc
// @Summary Usage summary
// @Description Returns the plan, every quota and the idea counts for the current cycle
// @Tags usage
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/usage/summary [get]
// @Security BearerAuth
func SummaryHandler(reporter SummaryReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		summary, err := reporter.Summary(c.Request.Context(), userID)
		if err != nil {
			apierrors.InternalError(c, "failed to load usage summary", err)
			return
		}

		c.JSON(http.StatusOK, SummaryResponse{Success: true, Usage: summary})
	}
}
