package writerepo

import (
	"context"

	"trainhub/internal/domain/review"
	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const insertDecisionSQL = `
INSERT INTO review_decisions (id, draft_id, reviewer_id, verdict, notes, decided_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *ReviewRepository) Append(ctx context.Context, dbtx db.DBTX, decision *review.Decision) error {
	_, err := dbtx.Exec(ctx, insertDecisionSQL,
		decision.ID(),
		decision.DraftID(),
		decision.ReviewerID(),
		decision.Verdict().String(),
		decision.Notes(),
		pgconv.TimeToPgtype(decision.DecidedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append review decision", err)
	}
	return nil
}
