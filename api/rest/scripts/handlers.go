package scripts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "codeberg.org/tubespark/server/internal/errors"
	"codeberg.org/tubespark/server/internal/generation"
	"codeberg.org/tubespark/server/internal/logger"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/internal/scripts"
	"codeberg.org/tubespark/server/tubespark/ideas"
)

// Handler godoc
// @Summary Generate a video script
// @Description Spends one script_basic or script_premium unit and writes a script for one of the user's saved ideas. A failed generation is not refunded.
// @Tags scripts
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Idea and script type"
// @Success 200 {object} Response
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Failure 429 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/scripts/generate [post]
// @Security BearerAuth
func Handler(generator Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		script, consumption, err := generator.Generate(c.Request.Context(), userID, req.IdeaID, scripts.Type(req.ScriptType), req.Options)
		if err != nil {
			respondScriptError(c, err)
			return
		}

		logger.Info("script generated",
			"user_id", userID,
			"idea_id", script.IdeaID,
			"script_type", script.ScriptType,
			"used", consumption.Used,
			"limit", consumption.Limit,
		)

		c.JSON(http.StatusOK, Response{
			Success: true,
			Script:  script,
			Usage: UsageInfo{
				Used:  consumption.Used,
				Limit: consumption.Limit,
			},
		})
	}
}

func respondScriptError(c *gin.Context, err error) {
	var exceeded *quota.ExceededError
	var failed *generation.FailedError

	switch {
	case errors.Is(err, ideas.ErrIdeaNotFound):
		apierrors.NotFound(c, "idea")
	case errors.Is(err, scripts.ErrInvalidType):
		apierrors.ValidationError(c, "", map[string]string{"scriptType": "invalid"})
	case errors.As(err, &exceeded):
		apierrors.QuotaExceeded(c, string(exceeded.Kind), exceeded.Used, exceeded.Limit)
	case errors.As(err, &failed):
		apierrors.ScriptGenerationFailed(c, failed.Reason, failed)
	default:
		apierrors.InternalError(c, "failed to generate script", err)
	}
}
