//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/domain/user"
	"trainhub/internal/handler/api"
	"trainhub/internal/usecase/commands"
	"trainhub/tests/common/httptest"
	"trainhub/tests/common/testutil"
	commandsmock "trainhub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ComponentHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockComponents *commandsmock.MockComponentCommands
	handler        *api.ComponentHandler
	actorID        uuid.UUID
}

func (s *ComponentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockComponents = commandsmock.NewMockComponentCommands(s.mockCtrl)
	s.handler = api.NewComponentHandler(s.mockComponents)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleIntegration)
		c.Next()
	}

	s.router.POST("/bundles/:id/components", authMiddleware, s.handler.Add)
	s.router.PUT("/bundles/:id/components/:ref", authMiddleware, s.handler.SetQuantity)
	s.router.DELETE("/bundles/:id/components/:ref", authMiddleware, s.handler.Remove)
}

func (s *ComponentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestComponentHandlerSuite(t *testing.T) {
	suite.Run(t, new(ComponentHandlerTestSuite))
}

// ================================================================================
// TestSetQuantity
// ================================================================================

func (s *ComponentHandlerTestSuite) TestSetQuantity() {
	draftID := uuid.New()
	url := "/bundles/" + draftID.String() + "/components/101"

	s.Run("success: returns 204 No Content", func() {
		s.mockComponents.EXPECT().
			SetQuantity(gomock.Any(), commands.Actor{ID: s.actorID, Role: user.RoleIntegration}, draftID, int64(101), int32(3)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 3}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "quantity zero", body: map[string]any{"quantity": 0}},
			{name: "quantity over cap", body: map[string]any{"quantity": 101}},
			{name: "missing quantity", body: map[string]any{}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for a non-numeric ref", func() {
		badURL := "/bundles/" + draftID.String() + "/components/whey"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, badURL, map[string]any{"quantity": 3}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid component ref")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "bundle never published", commandsError: commands.ErrBundleNotPublished, expectedStatus: http.StatusConflict},
			{name: "component not found", commandsError: commands.ErrComponentNotFound, expectedStatus: http.StatusNotFound},
			{name: "caller is not an integration", commandsError: commands.ErrNotAuthorized, expectedStatus: http.StatusForbidden},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockComponents.EXPECT().SetQuantity(gomock.Any(), gomock.Any(), draftID, int64(101), int32(3)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 3}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestAdd
// ================================================================================

func (s *ComponentHandlerTestSuite) TestAdd() {
	draftID := uuid.New()
	url := "/bundles/" + draftID.String() + "/components"

	reqBody := map[string]any{
		"remote_ref": 103,
		"name":       "Foam Roller",
		"quantity":   1,
		"unit_price": "24.50",
	}

	s.Run("success: returns 204 No Content", func() {
		expected := bundle.ProductItem{
			RemoteRef: 103,
			Name:      "Foam Roller",
			Quantity:  1,
			UnitPrice: decimal.RequireFromString("24.50"),
		}
		s.mockComponents.EXPECT().Add(gomock.Any(), gomock.Any(), draftID, expected).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing remote_ref", mutate: testutil.Field("remote_ref", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "quantity zero", mutate: testutil.Field("quantity", 0)},
			{name: "unparseable unit price", mutate: testutil.Field("unit_price", "free")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict when the bundle is not live", func() {
		s.mockComponents.EXPECT().Add(gomock.Any(), gomock.Any(), draftID, gomock.Any()).
			Return(commands.ErrBundleNotPublished).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestRemove
// ================================================================================

func (s *ComponentHandlerTestSuite) TestRemove() {
	draftID := uuid.New()
	url := "/bundles/" + draftID.String() + "/components/101"

	s.Run("success: returns 204 No Content", func() {
		s.mockComponents.EXPECT().Remove(gomock.Any(), gomock.Any(), draftID, int64(101)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown component", func() {
		s.mockComponents.EXPECT().Remove(gomock.Any(), gomock.Any(), draftID, int64(101)).
			Return(commands.ErrComponentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
