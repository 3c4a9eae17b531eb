package api

import (
	"net/http"

	reqdto "trainhub/internal/handler/dto/request"
	"trainhub/internal/handler/httperr"
	"trainhub/internal/handler/middleware"
	"trainhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Submit for review
// @Description Submit a draft for manager review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id}/submit [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	id, actor, ok := reviewTarget(c)
	if !ok {
		return
	}
	if err := h.cmds.Submit(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Submit failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Approve bundle
// @Description Approve a pending review; the bundle moves to publishing and a sync job is queued
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id}/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, actor, ok := reviewTarget(c)
	if !ok {
		return
	}
	if err := h.cmds.Approve(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Approve failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject bundle
// @Description Reject a pending review with a reason
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param request body reqdto.RejectRequest true "Rejection reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id}/reject [post]
func (h *ReviewHandler) Reject(c *gin.Context) {
	id, actor, ok := reviewTarget(c)
	if !ok {
		return
	}
	var req reqdto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Reject(c.Request.Context(), actor, id, req.Reason); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Reject failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Request changes
// @Description Return a pending review to the trainer with change notes
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param request body reqdto.RequestChangesRequest true "Change notes"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id}/request-changes [post]
func (h *ReviewHandler) RequestChanges(c *gin.Context) {
	id, actor, ok := reviewTarget(c)
	if !ok {
		return
	}
	var req reqdto.RequestChangesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.RequestChanges(c.Request.Context(), actor, id, req.Notes); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Request changes failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func reviewTarget(c *gin.Context) (uuid.UUID, commands.Actor, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, commands.Actor{}, false
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, commands.Actor{}, false
	}
	return id, actor, true
}
