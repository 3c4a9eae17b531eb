//go:build unit

package review_test

import (
	"testing"
	"time"

	"trainhub/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecision(t *testing.T) {
	draftID := uuid.New()
	reviewerID := uuid.New()
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		d, err := review.NewDecision(draftID, reviewerID, review.VerdictApproved, "", now)
		require.NoError(t, err)
		require.NotNil(t, d)

		assert.NotEqual(t, uuid.Nil, d.ID())
		assert.Equal(t, draftID, d.DraftID())
		assert.Equal(t, reviewerID, d.ReviewerID())
		assert.Equal(t, review.VerdictApproved, d.Verdict())
		assert.Equal(t, now, d.DecidedAt())
	})

	t.Run("verdict validation", func(t *testing.T) {
		cases := []struct {
			name    string
			verdict review.Verdict
			notes   string
			errIs   error
		}{
			{name: "approved without notes", verdict: review.VerdictApproved},
			{name: "changes requested without notes", verdict: review.VerdictChangesRequested},
			{name: "rejected with reason", verdict: review.VerdictRejected, notes: "missing description"},
			{name: "rejected without reason", verdict: review.VerdictRejected, errIs: review.ErrEmptyReason},
			{name: "rejected with whitespace reason", verdict: review.VerdictRejected, notes: "   ", errIs: review.ErrEmptyReason},
			{name: "unknown verdict", verdict: review.Verdict("maybe"), errIs: review.ErrInvalidVerdict},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := review.NewDecision(draftID, reviewerID, tc.verdict, tc.notes, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}
