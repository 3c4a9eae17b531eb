package api

import (
	"net/http"

	resdto "trainhub/internal/handler/dto/response"
	"trainhub/internal/handler/httperr"
	"trainhub/internal/handler/middleware"
	"trainhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PublicationHandler struct {
	q queries.PublicationQueries
}

func NewPublicationHandler(q queries.PublicationQueries) *PublicationHandler {
	return &PublicationHandler{q: q}
}

// @Summary Live listing
// @Description Get the live commerce listing of a bundle with checkout URL and platform metadata
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 200 {object} resdto.PublicationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bundles/{id}/publication [get]
func (h *PublicationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByDraftID(c.Request.Context(), actor.ID, actor.Role.String(), id)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicationView(view))
}

// @Summary Publication history
// @Description List past publication attempts for a bundle, newest first
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 200 {array} resdto.PublicationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bundles/{id}/publication/history [get]
func (h *PublicationHandler) History(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	items, err := h.q.ListHistory(c.Request.Context(), actor.ID, actor.Role.String(), id)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "List failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicationHistory(items))
}
