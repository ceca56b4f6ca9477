package generate

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "codeberg.org/tubespark/server/internal/errors"
	"codeberg.org/tubespark/server/internal/generation"
	"codeberg.org/tubespark/server/internal/logger"
	"codeberg.org/tubespark/server/internal/quota"
)

// Handler godoc
// @Summary Generate video ideas
// @Description Spends one idea unit from the user's monthly quota and returns freshly generated, normalized ideas. A failed generation is not refunded.
// @Tags ideas
// @Accept json
// @Produce json
// @Param request body generation.Request true "Generation parameters"
// @Success 200 {object} Response
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 429 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/ideas/generate [post]
// @Security BearerAuth
func Handler(generator Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		var req generation.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		result, consumption, err := generator.Generate(c.Request.Context(), userID, req)
		if err != nil {
			respondGenerationError(c, err)
			return
		}

		logger.Info("ideas generated",
			"user_id", userID,
			"count", len(result),
			"used", consumption.Used,
			"limit", consumption.Limit,
		)

		c.JSON(http.StatusOK, Response{
			Success:     true,
			Ideas:       result,
			GeneratedAt: time.Now().UTC(),
			Usage: UsageInfo{
				Used:  consumption.Used,
				Limit: consumption.Limit,
			},
		})
	}
}

func respondGenerationError(c *gin.Context, err error) {
	var invalid *generation.InvalidRequestError
	var exceeded *quota.ExceededError
	var failed *generation.FailedError

	switch {
	case errors.As(err, &invalid):
		apierrors.ValidationError(c, "missing or invalid fields", invalidFields(invalid))
	case errors.As(err, &exceeded):
		apierrors.QuotaExceeded(c, string(exceeded.Kind), exceeded.Used, exceeded.Limit)
	case errors.As(err, &failed):
		apierrors.GenerationFailed(c, failed.Reason, failed)
	default:
		apierrors.InternalError(c, "failed to generate ideas", err)
	}
}

func invalidFields(err *generation.InvalidRequestError) map[string]string {
	fields := make(map[string]string, len(err.Missing)+len(err.Invalid))

	for _, name := range err.Missing {
		fields[name] = "required"
	}

	for _, name := range err.Invalid {
		fields[name] = "invalid"
	}

	return fields
}
