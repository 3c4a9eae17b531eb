package writerepo

import (
	"context"

	"trainhub/internal/domain/publication"
	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PublicationRepository struct{}

func NewPublicationRepository() *PublicationRepository {
	return &PublicationRepository{}
}

const insertPublicationSQL = `
INSERT INTO bundle_publications (
    id, draft_id, remote_product_ref, remote_variant_ref,
    state, published_at, synced_at, sync_status, last_sync_error,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *PublicationRepository) Create(ctx context.Context, dbtx db.DBTX, pub *publication.Publication) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, insertPublicationSQL,
		pub.ID(),
		pub.DraftID(),
		pgconv.Int64PtrToPgtype(pub.RemoteProductRef()),
		pgconv.Int64PtrToPgtype(pub.RemoteVariantRef()),
		string(pub.State()),
		pgconv.TimePtrToPgtype(pub.PublishedAt()),
		pgconv.TimePtrToPgtype(pub.SyncedAt()),
		string(pub.SyncStatus()),
		pgconv.StringPtrToPgtype(pub.LastSyncError()),
		pgconv.TimeToPgtype(pub.CreatedAt()),
		pgconv.TimeToPgtype(pub.UpdatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create publication", err)
	}
	return pub.ID(), nil
}

const updatePublicationSQL = `
UPDATE bundle_publications SET
    remote_product_ref = $2, remote_variant_ref = $3,
    state = $4, published_at = $5, synced_at = $6,
    sync_status = $7, last_sync_error = $8, updated_at = $9
WHERE id = $1`

func (r *PublicationRepository) Update(ctx context.Context, dbtx db.DBTX, pub *publication.Publication) error {
	tag, err := dbtx.Exec(ctx, updatePublicationSQL,
		pub.ID(),
		pgconv.Int64PtrToPgtype(pub.RemoteProductRef()),
		pgconv.Int64PtrToPgtype(pub.RemoteVariantRef()),
		string(pub.State()),
		pgconv.TimePtrToPgtype(pub.PublishedAt()),
		pgconv.TimePtrToPgtype(pub.SyncedAt()),
		string(pub.SyncStatus()),
		pgconv.StringPtrToPgtype(pub.LastSyncError()),
		pgconv.TimeToPgtype(pub.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update publication", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("publication not found", nil, infra.KindNotFound)
	}
	return nil
}

const findActivePublicationSQL = `
SELECT id, draft_id, remote_product_ref, remote_variant_ref,
       state, published_at, synced_at, sync_status, last_sync_error,
       created_at, updated_at
FROM bundle_publications
WHERE draft_id = $1
ORDER BY created_at DESC
LIMIT 1
FOR UPDATE`

func (r *PublicationRepository) FindActiveByDraftID(ctx context.Context, dbtx db.DBTX, draftID uuid.UUID) (*publication.Publication, error) {
	var (
		id, dID                            uuid.UUID
		remoteProductRef, remoteVariantRef pgtype.Int8
		state, syncStatus                  string
		publishedAt, syncedAt              pgtype.Timestamptz
		lastSyncError                      pgtype.Text
		createdAt, updatedAt               pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, findActivePublicationSQL, draftID).Scan(
		&id, &dID, &remoteProductRef, &remoteVariantRef,
		&state, &publishedAt, &syncedAt, &syncStatus, &lastSyncError,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("publication not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find publication", err)
	}

	return publication.ReconstructPublication(
		id, dID,
		pgconv.Int64PtrFromPgtype(remoteProductRef),
		pgconv.Int64PtrFromPgtype(remoteVariantRef),
		publication.State(state),
		pgconv.TimePtrFromPgtype(publishedAt),
		pgconv.TimePtrFromPgtype(syncedAt),
		publication.SyncStatus(syncStatus),
		pgconv.StringPtrFromPgtype(lastSyncError),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
