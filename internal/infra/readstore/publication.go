package readstore

import (
	"context"

	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"
	"trainhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PublicationReadStore struct {
	db db.DBTX
}

func NewPublicationReadStore(dbtx db.DBTX) *PublicationReadStore {
	return &PublicationReadStore{db: dbtx}
}

const findPublicationByDraftSQL = `
SELECT p.id, p.draft_id, d.trainer_id, p.state, p.sync_status, p.remote_product_ref, p.remote_variant_ref,
       p.last_sync_error, p.published_at, p.created_at, p.updated_at
FROM bundle_publications p
JOIN bundle_drafts d ON d.id = p.draft_id
WHERE p.draft_id = $1
ORDER BY p.created_at DESC
LIMIT 1`

func (r *PublicationReadStore) FindByDraftID(ctx context.Context, draftID uuid.UUID) (*queries.PublicationView, error) {
	row := r.db.QueryRow(ctx, findPublicationByDraftSQL, draftID)
	view, err := scanPublicationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("publication not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find publication view", err)
	}
	return view, nil
}

const listPublicationHistorySQL = `
SELECT p.id, p.draft_id, d.trainer_id, p.state, p.sync_status, p.remote_product_ref, p.remote_variant_ref,
       p.last_sync_error, p.published_at, p.created_at, p.updated_at
FROM bundle_publications p
JOIN bundle_drafts d ON d.id = p.draft_id
WHERE p.draft_id = $1
ORDER BY p.created_at DESC`

func (r *PublicationReadStore) FindHistoryByDraftID(ctx context.Context, draftID uuid.UUID) ([]*queries.PublicationView, error) {
	rows, err := r.db.Query(ctx, listPublicationHistorySQL, draftID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list publication history", err)
	}
	defer rows.Close()

	var out []*queries.PublicationView
	for rows.Next() {
		view, err := scanPublicationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan publication view", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read publication history", err)
	}
	return out, nil
}

func scanPublicationView(row pgx.Row) (*queries.PublicationView, error) {
	var (
		view                 queries.PublicationView
		productRef           pgtype.Int8
		variantRef           pgtype.Int8
		lastSyncError        pgtype.Text
		publishedAt          pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.DraftID, &view.TrainerID, &view.State, &view.SyncStatus, &productRef, &variantRef,
		&lastSyncError, &publishedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.ProductRef = pgconv.Int64PtrFromPgtype(productRef)
	view.VariantRef = pgconv.Int64PtrFromPgtype(variantRef)
	view.LastSyncError = pgconv.StringPtrFromPgtype(lastSyncError)
	view.PublishedAt = pgconv.TimePtrFromPgtype(publishedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
