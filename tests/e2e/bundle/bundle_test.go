//go:build e2e

package bundle_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"trainhub/internal/domain/user"
	"trainhub/internal/infra/commerce"
	resdto "trainhub/internal/handler/dto/response"
	"trainhub/tests/common/authtest"
	"trainhub/tests/common/builder"
	"trainhub/tests/common/httptest"
	"trainhub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bundlesURL        = "/api/bundles"
	bundleURL         = "/api/bundles/%s"
	submitURL         = "/api/bundles/%s/submit"
	approveURL        = "/api/bundles/%s/approve"
	rejectURL         = "/api/bundles/%s/reject"
	requestChangesURL = "/api/bundles/%s/request-changes"
	reviewQueueURL    = "/api/bundles/review-queue"
	decisionsURL      = "/api/bundles/%s/decisions"
	publicationURL    = "/api/bundles/%s/publication"
	componentURL      = "/api/bundles/%s/components/%d"
)

type BundleSuite struct {
	e2e.SharedSuite
}

func (s *BundleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBundleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BundleSuite))
}

func (s *BundleSuite) createDraft(t *testing.T, token string) resdto.BundleResponse {
	t.Helper()

	reqBody := builder.NewBundleBuilder().BuildContentRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bundlesURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.BundleResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.ID)
	return created
}

func (s *BundleSuite) getBundle(t *testing.T, token, id string) resdto.BundleResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bundleURL, id), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view resdto.BundleResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return view
}

// drainPublishQueue runs the worker loop synchronously until no job remains.
func (s *BundleSuite) drainPublishQueue(t *testing.T) {
	t.Helper()
	for {
		processed, err := s.Publisher.ProcessNextJob(context.Background())
		require.NoError(t, err)
		if !processed {
			return
		}
	}
}

// =============================================================================
// TestPublishLifecycle - draft to live listing
// =============================================================================

func (s *BundleSuite) TestPublishLifecycle() {
	s.Run("Normal case: approved bundle goes live on the platform", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))

		created := s.createDraft(t, trainerToken)
		require.Equal(t, "draft", created.Status)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// The manager sees the submission in the queue
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reviewQueueURL, nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var queue resdto.BundleListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &queue))
		require.Len(t, queue.Items, 1)
		require.Equal(t, created.ID, queue.Items[0].ID)
		require.Equal(t, "pending_review", queue.Items[0].Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, "publishing", s.getBundle(t, trainerToken, created.ID).Status)

		s.drainPublishQueue(t)

		published := s.getBundle(t, trainerToken, created.ID)
		require.Equal(t, "published", published.Status)
		require.NotNil(t, published.RemoteProductRef)
		require.NotNil(t, published.RemoteVariantRef)

		// Authored content survives the round trip unchanged
		if diff := cmp.Diff(created.Products, published.Products); diff != "" {
			t.Errorf("products mismatch (-want +got):\n%s", diff)
		}

		// The live listing view carries checkout URL and platform metadata
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicationURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var listing resdto.PublicationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listing))
		require.Equal(t, "published", listing.State)
		require.Equal(t, "synced", listing.SyncStatus)
		require.Equal(t, fmt.Sprintf("https://shop.test/cart/%d:1", *published.RemoteVariantRef), listing.CheckoutURL)
		require.Equal(t, "stub", listing.Metadata["source"])
		require.NotNil(t, listing.PublishedAt)
	})

	s.Run("Normal case: rejection returns the draft with the reason attached", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		reason := "pricing does not match the component list"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectURL, created.ID),
			map[string]any{"reason": reason}, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		rejected := s.getBundle(t, trainerToken, created.ID)
		require.Equal(t, "rejected", rejected.Status)
		require.NotNil(t, rejected.ReviewNotes)
		require.Equal(t, reason, *rejected.ReviewNotes)

		// The verdict is recorded in the decision history
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(decisionsURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var decisions []*resdto.DecisionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &decisions))
		require.Len(t, decisions, 1)
		require.Equal(t, "rejected", decisions[0].Verdict)
		require.Equal(t, reason, decisions[0].Notes)

		// A rejected draft can be fixed and resubmitted
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, "pending_review", s.getBundle(t, trainerToken, created.ID).Status)
	})

	s.Run("Error case: non-manager cannot approve", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: another trainer cannot read the live listing", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		rivalToken := authtest.CreateAndLogin(t, s.DB, s.Router, "rival@example.com", string(user.RoleTrainer))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		s.drainPublishQueue(t)

		// Sync state and platform metadata are not visible across trainers
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicationURL, created.ID), nil, rivalToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicationURL, created.ID)+"/history", nil, rivalToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// The owner and the manager both can
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicationURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicationURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Normal case: a job stranded by a crashed worker is reclaimed", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		// Simulate a worker that claimed the job and died before recording
		_, err := s.DB.Exec(context.Background(),
			"UPDATE publish_jobs SET status = 'processing', updated_at = now() - interval '10 minutes'")
		require.NoError(t, err)

		s.drainPublishQueue(t)
		require.Equal(t, "published", s.getBundle(t, trainerToken, created.ID).Status)
	})

	s.Run("Error case: double submit conflicts", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestUpdateRound - editing a live bundle
// =============================================================================

func (s *BundleSuite) TestUpdateRound() {
	s.Run("Normal case: component edit opens an update round with a frozen snapshot", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		integrationToken := authtest.CreateAndLogin(t, s.DB, s.Router, "extension@example.com", string(user.RoleIntegration))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		s.drainPublishQueue(t)
		require.Equal(t, "published", s.getBundle(t, trainerToken, created.ID).Status)

		// The storefront extension bumps a component quantity
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(componentURL, created.ID, 101),
			map[string]any{"quantity": 5}, integrationToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		pending := s.getBundle(t, trainerToken, created.ID)
		require.Equal(t, "pending_update", pending.Status)
		require.NotNil(t, pending.Snapshot, "live listing snapshot should be frozen")

		// Shoppers still see the old quantity while the new one awaits review
		var snapshotQty, draftQty int32
		for _, p := range pending.Snapshot.Products {
			if p.RemoteRef == 101 {
				snapshotQty = p.Quantity
			}
		}
		for _, p := range pending.Products {
			if p.RemoteRef == 101 {
				draftQty = p.Quantity
			}
		}
		require.Equal(t, int32(2), snapshotQty)
		require.Equal(t, int32(5), draftQty)

		// The frozen snapshot carries the full listing, services and goals included
		if diff := cmp.Diff(created.Services, pending.Snapshot.Services); diff != "" {
			t.Errorf("snapshot services mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, created.Goals, pending.Snapshot.Goals)

		// Approving the update round re-syncs and clears the snapshot
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		s.drainPublishQueue(t)

		resynced := s.getBundle(t, trainerToken, created.ID)
		require.Equal(t, "published", resynced.Status)
		require.Nil(t, resynced.Snapshot)
	})

	s.Run("Error case: trainer edit is blocked while publishing", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		// The job has not run yet, the bundle is mid-publish
		reqBody := builder.NewBundleBuilder().WithTitle("Renamed Pack").BuildContentRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bundleURL, created.ID), reqBody, trainerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: component edits require the integration role", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(componentURL, created.ID, 101),
			map[string]any{"quantity": 5}, trainerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestSyncFailure - the platform refuses or drops the sync
// =============================================================================

func (s *BundleSuite) TestSyncFailure() {
	s.Run("Normal case: a failed sync lands in failed and the draft stays editable", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		s.Commerce.FailNextSync(commerce.NewError(commerce.KindTransient, "platform unreachable", nil))
		s.drainPublishQueue(t)

		failed := s.getBundle(t, trainerToken, created.ID)
		require.Equal(t, "failed", failed.Status)
		require.Nil(t, failed.RemoteProductRef)

		// The publication records the failure with its classification
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicationURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var listing resdto.PublicationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listing))
		require.Equal(t, "failed", listing.State)
		require.Equal(t, "failed", listing.SyncStatus)
		require.NotNil(t, listing.LastSyncError)
		require.True(t, strings.HasPrefix(*listing.LastSyncError, "transient: "), *listing.LastSyncError)

		// The trainer can still fix the draft and resubmit
		reqBody := builder.NewBundleBuilder().WithTitle("Fixed Pack").BuildContentRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bundleURL, created.ID), reqBody, trainerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// The next round succeeds
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		s.drainPublishQueue(t)

		published := s.getBundle(t, trainerToken, created.ID)
		require.Equal(t, "published", published.Status)
		require.NotNil(t, published.RemoteProductRef)
	})

	s.Run("Normal case: a rejected sync is distinguishable from a transient one", func() {
		t := s.T()

		trainerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))

		created := s.createDraft(t, trainerToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		s.Commerce.FailNextSync(commerce.NewError(commerce.KindRejected, "platform rejected request with 422", nil))
		s.drainPublishQueue(t)

		require.Equal(t, "failed", s.getBundle(t, trainerToken, created.ID).Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicationURL, created.ID), nil, trainerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var listing resdto.PublicationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listing))
		require.NotNil(t, listing.LastSyncError)
		require.True(t, strings.HasPrefix(*listing.LastSyncError, "rejected: "), *listing.LastSyncError)
	})
}
