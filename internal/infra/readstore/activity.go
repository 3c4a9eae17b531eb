package readstore

import (
	"context"
	"encoding/json"

	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"
	"trainhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ActivityReadStore struct {
	db db.DBTX
}

func NewActivityReadStore(dbtx db.DBTX) *ActivityReadStore {
	return &ActivityReadStore{db: dbtx}
}

const listActivityByEntitySQL = `
SELECT a.id, a.actor_id, COALESCE(u.display_name, ''), a.action,
       a.entity_type, a.entity_id, a.detail, a.created_at
FROM activity_logs a
LEFT JOIN users u ON u.id = a.actor_id
WHERE a.entity_type = $1 AND a.entity_id = $2
ORDER BY a.created_at DESC
LIMIT $3`

func (r *ActivityReadStore) FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int32) ([]*queries.ActivityView, error) {
	rows, err := r.db.Query(ctx, listActivityByEntitySQL, entityType, entityID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity", err)
	}
	defer rows.Close()

	var out []*queries.ActivityView
	for rows.Next() {
		var (
			view      queries.ActivityView
			actorID   pgtype.UUID
			detailRaw []byte
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &actorID, &view.ActorName, &view.Action,
			&view.EntityType, &view.EntityID, &detailRaw, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan activity entry", err)
		}
		if id := pgconv.UUIDPtrFromPgtype(actorID); id != nil {
			view.ActorID = *id
		}
		if len(detailRaw) > 0 {
			if err := json.Unmarshal(detailRaw, &view.Detail); err != nil {
				return nil, infra.WrapRepoErr("failed to decode activity detail", err)
			}
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		out = append(out, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read activity list", err)
	}
	return out, nil
}
