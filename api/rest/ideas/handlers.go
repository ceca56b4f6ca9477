package ideas

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "codeberg.org/tubespark/server/internal/errors"
	"codeberg.org/tubespark/server/tubespark/ideas"
)

// ListIdeasHandler godoc
// @Summary List saved ideas
// @Description Returns the authenticated user's saved ideas, newest first
// @Tags ideas
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/ideas [get]
// @Security BearerAuth
func ListIdeasHandler(store IdeaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		list, err := store.ListForUser(c.Request.Context(), userID)
		if err != nil {
			apierrors.InternalError(c, "failed to list ideas", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Success: true, Ideas: list})
	}
}

// SaveIdeaHandler godoc
// @Summary Save an idea
// @Description Persists a generated (or hand-written) idea for the authenticated user. Missing fields are filled with defaults.
// @Tags ideas
// @Accept json
// @Produce json
// @Param request body SaveRequest true "Idea to save"
// @Success 201 {object} IdeaResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/ideas/save [post]
// @Security BearerAuth
func SaveIdeaHandler(store IdeaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		var req SaveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "idea data is required", err)
			return
		}

		idea, err := store.Create(c.Request.Context(), userID, ideas.Generated{Fields: req.Idea})
		if err != nil {
			apierrors.InternalError(c, "failed to save idea", err)
			return
		}

		c.JSON(http.StatusCreated, IdeaResponse{Success: true, Idea: idea})
	}
}

// GetIdeaHandler godoc
// @Summary Get a saved idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} IdeaResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/ideas/{id} [get]
// @Security BearerAuth
func GetIdeaHandler(store IdeaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		ideaID, ok := apierrors.ValidatePathUUID(c, "id", "idea")
		if !ok {
			return
		}

		idea, err := store.Get(c.Request.Context(), userID, ideaID)
		if err != nil {
			respondStoreError(c, "failed to get idea", err)
			return
		}

		c.JSON(http.StatusOK, IdeaResponse{Success: true, Idea: idea})
	}
}

// UpdateIdeaHandler godoc
// @Summary Update a saved idea
// @Description Partially updates an idea. Only fields present in the body change.
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID"
// @Param request body ideas.UpdateRequest true "Fields to change"
// @Success 200 {object} IdeaResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/ideas/{id} [patch]
// @Security BearerAuth
func UpdateIdeaHandler(store IdeaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		ideaID, ok := apierrors.ValidatePathUUID(c, "id", "idea")
		if !ok {
			return
		}

		var req ideas.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid update", err)
			return
		}

		idea, err := store.Update(c.Request.Context(), userID, ideaID, req)
		if err != nil {
			respondStoreError(c, "failed to update idea", err)
			return
		}

		c.JSON(http.StatusOK, IdeaResponse{Success: true, Idea: idea})
	}
}

// DeleteIdeaHandler godoc
// @Summary Delete a saved idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/ideas/{id} [delete]
// @Security BearerAuth
func DeleteIdeaHandler(store IdeaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		ideaID, ok := apierrors.ValidatePathUUID(c, "id", "idea")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), userID, ideaID); err != nil {
			respondStoreError(c, "failed to delete idea", err)
			return
		}

		c.JSON(http.StatusOK, DeleteResponse{Success: true, Message: "idea deleted"})
	}
}

func respondStoreError(c *gin.Context, message string, err error) {
	if errors.Is(err, ideas.ErrIdeaNotFound) {
		apierrors.NotFound(c, "idea")
		return
	}

	apierrors.InternalError(c, message, err)
}
