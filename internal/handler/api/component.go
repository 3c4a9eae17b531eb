package api

import (
	"net/http"
	"strconv"

	reqdto "trainhub/internal/handler/dto/request"
	"trainhub/internal/handler/httperr"
	"trainhub/internal/handler/middleware"
	"trainhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler exposes the line-item editor used by storefront
// extensions. All routes require the integration role.
type ComponentHandler struct {
	cmds commands.ComponentCommands
}

func NewComponentHandler(cmds commands.ComponentCommands) *ComponentHandler {
	return &ComponentHandler{cmds: cmds}
}

// @Summary Set component quantity
// @Description Change the quantity of a product component on a live bundle
// @Tags components
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param ref path int true "Remote product ref"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id}/components/{ref} [put]
func (h *ComponentHandler) SetQuantity(c *gin.Context) {
	id, actor, ok := componentTarget(c)
	if !ok {
		return
	}
	ref, err := strconv.ParseInt(c.Param("ref"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid component ref", nil)
		return
	}
	var req reqdto.SetQuantityRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err = h.cmds.SetQuantity(c.Request.Context(), actor, id, ref, req.Quantity); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Set quantity failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add component
// @Description Add a product component to a live bundle
// @Tags components
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param request body reqdto.AddComponentRequest true "Component to add"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id}/components [post]
func (h *ComponentHandler) Add(c *gin.Context) {
	id, actor, ok := componentTarget(c)
	if !ok {
		return
	}
	var req reqdto.AddComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid component", nil)
		return
	}
	if err = h.cmds.Add(c.Request.Context(), actor, id, item); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Add component failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove component
// @Description Remove a product component from a live bundle
// @Tags components
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param ref path int true "Remote product ref"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id}/components/{ref} [delete]
func (h *ComponentHandler) Remove(c *gin.Context) {
	id, actor, ok := componentTarget(c)
	if !ok {
		return
	}
	ref, err := strconv.ParseInt(c.Param("ref"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid component ref", nil)
		return
	}
	if err = h.cmds.Remove(c.Request.Context(), actor, id, ref); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Remove component failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func componentTarget(c *gin.Context) (uuid.UUID, commands.Actor, bool) {
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
