package writerepo

import (
	"context"
	"encoding/json"

	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ActivityRepository struct{}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

const insertActivitySQL = `
INSERT INTO activity_logs (id, actor_id, action, entity_type, entity_id, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`

func (r *ActivityRepository) Append(ctx context.Context, dbtx db.DBTX, entry shared.ActivityEntry) error {
	var detail []byte
	if entry.Detail != nil {
		var err error
		detail, err = json.Marshal(entry.Detail)
		if err != nil {
			return infra.WrapRepoErr("failed to encode activity detail", err)
		}
	}

	// System actions (the publish worker) carry no actor.
	var actorID *uuid.UUID
	if entry.ActorID != uuid.Nil {
		actorID = &entry.ActorID
	}

	_, err := dbtx.Exec(ctx, insertActivitySQL,
		uuid.New(),
		pgconv.UUIDPtrToPgtype(actorID),
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		detail,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append activity entry", err)
	}
	return nil
}
