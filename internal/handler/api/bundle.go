package api

import (
	"net/http"
	"strconv"

	reqdto "trainhub/internal/handler/dto/request"
	resdto "trainhub/internal/handler/dto/response"
	"trainhub/internal/handler/httperr"
	"trainhub/internal/handler/middleware"
	"trainhub/internal/usecase/commands"
	"trainhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BundleHandler struct {
	drafts   commands.DraftCommands
	reviews  commands.ReviewCommands
	q        queries.BundleQueries
	activity queries.ActivityQueries
}

func NewBundleHandler(drafts commands.DraftCommands, reviews commands.ReviewCommands, q queries.BundleQueries, activity queries.ActivityQueries) *BundleHandler {
	return &BundleHandler{drafts: drafts, reviews: reviews, q: q, activity: activity}
}

// @Summary Create bundle draft
// @Description Create a new bundle draft owned by the calling trainer
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BundleContentRequest true "Bundle content"
// @Success 201 {object} resdto.BundleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bundles [post]
func (h *BundleHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req reqdto.BundleContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}
	id, err := h.drafts.CreateDraft(c.Request.Context(), actor, input)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Create bundle failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor.ID, actor.Role.String(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bundle", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraftView(view))
}

// @Summary Update bundle draft
// @Description Replace the authored content of a bundle draft
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param request body reqdto.BundleContentRequest true "Bundle content"
// @Success 200 {object} resdto.BundleResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id} [put]
func (h *BundleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req reqdto.BundleContentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}
	if err = h.drafts.UpdateDraft(c.Request.Context(), actor, id, input); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Update bundle failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor.ID, actor.Role.String(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bundle", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Get bundle
// @Description Get a bundle draft with its published snapshot when present
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 200 {object} resdto.BundleResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bundles/{id} [get]
func (h *BundleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor.ID, actor.Role.String(), id)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary List own bundles
// @Description List bundles owned by the calling trainer with keyset pagination
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BundleListResponse
// @Failure 400 {object} map[string]string
// @Router /bundles [get]
func (h *BundleHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	limit, cursor := listParams(c)
	items, next, err := h.q.ListByTrainer(c.Request.Context(), actor.ID, cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "List failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftList(items, next))
}

// @Summary Review queue
// @Description List bundles awaiting review, oldest submission first
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BundleListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bundles/review-queue [get]
func (h *BundleHandler) ReviewQueue(c *gin.Context) {
	limit, cursor := listParams(c)
	items, next, err := h.q.ListAwaitingReview(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "List failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftList(items, next))
}

// @Summary Review history
// @Description List review decisions for a bundle, newest first
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 200 {array} resdto.DecisionResponse
// @Failure 400 {object} map[string]string
// @Router /bundles/{id}/decisions [get]
func (h *BundleHandler) ListDecisions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	items, err := h.q.ListDecisions(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "List failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecisionList(items))
}

// @Summary Bundle activity
// @Description List the audit trail of a bundle, newest first
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.ActivityResponse
// @Failure 400 {object} map[string]string
// @Router /bundles/{id}/activity [get]
func (h *BundleHandler) ListActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	limit, _ := listParams(c)
	items, err := h.activity.ListByEntity(c.Request.Context(), "bundle_draft", id, limit)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "List failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityList(items))
}

func listParams(c *gin.Context) (int, *queries.Cursor) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return limit, cursor
}
