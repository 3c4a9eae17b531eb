//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"trainhub/internal/domain/user"
	"trainhub/internal/handler/api"
	resdto "trainhub/internal/handler/dto/response"
	"trainhub/internal/usecase/commands"
	"trainhub/internal/usecase/queries"
	"trainhub/tests/common/builder"
	"trainhub/tests/common/httptest"
	"trainhub/tests/common/testutil"
	commandsmock "trainhub/tests/mock/commands"
	queriesmock "trainhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BundleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockDrafts   *commandsmock.MockDraftCommands
	mockReviews  *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockBundleQueries
	mockActivity *queriesmock.MockActivityQueries
	handler      *api.BundleHandler
	actorID      uuid.UUID
}

func (s *BundleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDrafts = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockReviews = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBundleQueries(s.mockCtrl)
	s.mockActivity = queriesmock.NewMockActivityQueries(s.mockCtrl)
	s.handler = api.NewBundleHandler(s.mockDrafts, s.mockReviews, s.mockQueries, s.mockActivity)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleTrainer)
		c.Next()
	}

	s.router.POST("/bundles", authMiddleware, s.handler.Create)
	s.router.GET("/bundles", authMiddleware, s.handler.ListMine)
	s.router.GET("/bundles/review-queue", authMiddleware, s.handler.ReviewQueue)
	s.router.GET("/bundles/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/bundles/:id", authMiddleware, s.handler.Update)
	s.router.GET("/bundles/:id/decisions", authMiddleware, s.handler.ListDecisions)
	s.router.GET("/bundles/:id/activity", authMiddleware, s.handler.ListActivity)
}

func (s *BundleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBundleHandlerSuite(t *testing.T) {
	suite.Run(t, new(BundleHandlerTestSuite))
}

type testCaseBundle struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BundleHandlerTestSuite) TestCreate() {
	url := "/bundles"

	reqBody := builder.NewBundleBuilder().BuildContentRequestDTO()
	returnView := builder.NewBundleBuilder().WithTrainerID(s.actorID).BuildDraftView()
	draftID := returnView.ID

	validation := []testCaseBundle{
		{name: "title at max length (120)", mutate: testutil.Field("title", strings.Repeat("a", 120)), expectCode: http.StatusCreated},
		{name: "title too long (121)", mutate: testutil.Field("title", strings.Repeat("a", 121)), expectCode: http.StatusBadRequest},
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: price (required)", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: cadence (required)", mutate: testutil.Field("cadence", nil), expectCode: http.StatusBadRequest},
		{name: "unknown cadence", mutate: testutil.Field("cadence", "yearly"), expectCode: http.StatusBadRequest},
		{name: "unparseable price", mutate: testutil.Field("price", "abc"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the stored view", func() {
		s.mockDrafts.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(draftID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleTrainer.String(), draftID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BundleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(draftID.String(), response.ID)
		s.Equal(returnView.Title, response.Title)
		s.Equal("draft", response.Status)
		s.Len(response.Products, 2)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockDrafts.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(draftID, nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleTrainer.String(), draftID).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "domain validation error", commandsError: commands.ErrDomainValidation, expectedStatus: http.StatusBadRequest},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDrafts.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BundleHandlerTestSuite) TestUpdate() {
	returnView := builder.NewBundleBuilder().WithTrainerID(s.actorID).BuildDraftView()
	draftID := returnView.ID
	url := "/bundles/" + draftID.String()

	reqBody := builder.NewBundleBuilder().BuildContentRequestDTO()

	s.Run("success: returns 200 OK with the updated view", func() {
		s.mockDrafts.EXPECT().UpdateDraft(gomock.Any(), gomock.Any(), draftID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleTrainer.String(), draftID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.BundleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(draftID.String(), response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bundles/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "bundle not found", commandsError: commands.ErrBundleNotFound, expectedStatus: http.StatusNotFound},
			{name: "draft owned by someone else", commandsError: commands.ErrDraftNotOwned, expectedStatus: http.StatusForbidden},
			{name: "edit while publishing", commandsError: commands.ErrInvalidState, expectedStatus: http.StatusConflict},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDrafts.EXPECT().UpdateDraft(gomock.Any(), gomock.Any(), draftID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BundleHandlerTestSuite) TestGet() {
	returnView := builder.NewBundleBuilder().WithTrainerID(s.actorID).BuildDraftView()
	draftID := returnView.ID
	url := "/bundles/" + draftID.String()

	s.Run("success: returns 200 OK with BundleResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleTrainer.String(), draftID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BundleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(draftID.String(), response.ID)
		s.Equal(returnView.TrainerName, response.TrainerName)
		s.Equal(returnView.Price.String(), response.Price)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bundles/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing bundle", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleTrainer.String(), draftID).
			Return(nil, queries.ErrBundleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 403 Forbidden for foreign draft", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleTrainer.String(), draftID).
			Return(nil, queries.ErrBundleAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BundleHandlerTestSuite) TestListMine() {
	url := "/bundles"

	items := []*queries.DraftListItem{
		builder.NewBundleBuilder().WithTrainerID(s.actorID).BuildListItem(),
		builder.NewBundleBuilder().WithTrainerID(s.actorID).WithTitle("Mobility Basics").BuildListItem(),
	}

	s.Run("success: returns 200 OK with items and next cursor", func() {
		next := &queries.Cursor{After: "v1-cursor"}
		s.mockQueries.EXPECT().ListByTrainer(gomock.Any(), s.actorID, nil, 20).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BundleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("v1-cursor", response.NextCursor)
	})

	s.Run("success: forwards limit and cursor query params", func() {
		s.mockQueries.EXPECT().ListByTrainer(gomock.Any(), s.actorID, &queries.Cursor{After: "abc"}, 5).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5&after=abc", nil, "bearer-token")

		var response resdto.BundleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.NextCursor)
	})

	s.Run("error: 400 Bad Request for a broken cursor", func() {
		s.mockQueries.EXPECT().ListByTrainer(gomock.Any(), s.actorID, &queries.Cursor{After: "broken"}, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=broken", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestReviewQueue
// ================================================================================

func (s *BundleHandlerTestSuite) TestReviewQueue() {
	url := "/bundles/review-queue"

	items := []*queries.DraftListItem{builder.NewBundleBuilder().BuildListItem()}

	s.Run("success: returns 200 OK with awaiting bundles", func() {
		s.mockQueries.EXPECT().ListAwaitingReview(gomock.Any(), nil, 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BundleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})
}

// ================================================================================
// TestListDecisions
// ================================================================================

func (s *BundleHandlerTestSuite) TestListDecisions() {
	draftID := uuid.New()
	url := "/bundles/" + draftID.String() + "/decisions"

	s.Run("success: returns 200 OK with decision history", func() {
		decisions := []*queries.DecisionView{
			{ID: uuid.New(), DraftID: draftID, ReviewerID: uuid.New(), Reviewer: "Review Manager", Verdict: "rejected", Notes: "missing description"},
		}
		s.mockQueries.EXPECT().ListDecisions(gomock.Any(), draftID).
			Return(decisions, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("rejected", response[0].Verdict)
		s.Equal("missing description", response[0].Notes)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bundles/xyz/decisions", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestListActivity
// ================================================================================

func (s *BundleHandlerTestSuite) TestListActivity() {
	draftID := uuid.New()
	url := "/bundles/" + draftID.String() + "/activity"

	s.Run("success: returns 200 OK with the audit trail", func() {
		entries := []*queries.ActivityView{
			{ID: uuid.New(), ActorID: s.actorID, ActorName: "Test Trainer", Action: "bundle.submitted", EntityType: "bundle_draft", EntityID: draftID},
		}
		s.mockActivity.EXPECT().ListByEntity(gomock.Any(), "bundle_draft", draftID, 20).
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ActivityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("bundle.submitted", response[0].Action)
	})
}
