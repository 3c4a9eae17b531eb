package writerepo

import (
	"context"
	"time"

	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PublishJobRepository struct{}

func NewPublishJobRepository() *PublishJobRepository {
	return &PublishJobRepository{}
}

const enqueuePublishJobSQL = `
INSERT INTO publish_jobs (id, draft_id, status, attempts, run_at, created_at, updated_at)
VALUES ($1, $2, 'queued', 0, $3, $3, $3)`

func (r *PublishJobRepository) Enqueue(ctx context.Context, dbtx db.DBTX, draftID uuid.UUID, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, enqueuePublishJobSQL, uuid.New(), draftID, pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue publish job", err)
	}
	return nil
}

// SKIP LOCKED lets concurrent workers claim distinct jobs without blocking on
// each other. A worker that crashes between claiming and recording leaves the
// row in 'processing'; such rows become claimable again once their updated_at
// is older than the reclaim window, so the draft never stays wedged in
// publishing.
const claimNextPublishJobSQL = `
UPDATE publish_jobs
SET status = 'processing', attempts = attempts + 1, updated_at = $1
WHERE id = (
    SELECT id FROM publish_jobs
    WHERE (status = 'queued' AND run_at <= $1)
       OR (status = 'processing' AND updated_at <= $1 - interval '5 minutes')
    ORDER BY run_at
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
RETURNING id, draft_id, attempts, run_at`

func (r *PublishJobRepository) ClaimNext(ctx context.Context, dbtx db.DBTX, now time.Time) (*shared.PublishJob, error) {
	var (
		job   shared.PublishJob
		runAt pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, claimNextPublishJobSQL, pgconv.TimeToPgtype(now)).
		Scan(&job.ID, &job.DraftID, &job.Attempts, &runAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to claim publish job", err)
	}
	job.RunAt = pgconv.TimeFromPgtype(runAt)
	return &job, nil
}

const markPublishJobDoneSQL = `
UPDATE publish_jobs SET status = 'done', updated_at = now() WHERE id = $1`

func (r *PublishJobRepository) MarkDone(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, markPublishJobDoneSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark publish job done", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("publish job not found", nil, infra.KindNotFound)
	}
	return nil
}

const markPublishJobFailedSQL = `
UPDATE publish_jobs SET status = 'failed', last_error = $2, updated_at = now() WHERE id = $1`

func (r *PublishJobRepository) MarkFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reason string) error {
	tag, err := dbtx.Exec(ctx, markPublishJobFailedSQL, id, reason)
	if err != nil {
		return infra.WrapRepoErr("failed to mark publish job failed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("publish job not found", nil, infra.KindNotFound)
	}
	return nil
}
