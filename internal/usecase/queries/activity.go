package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ActivityView struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    uuid.UUID      `json:"actor_id"`
	ActorName  string         `json:"actor_name,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Detail     map[string]any `json:"detail,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ActivityReadStore interface {
	FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int32) ([]*ActivityView, error)
}

type ActivityQueries interface {
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]*ActivityView, error)
}

type activityQueriesImpl struct {
	repo ActivityReadStore
}

func NewActivityQueries(repo ActivityReadStore) ActivityQueries {
	return &activityQueriesImpl{repo: repo}
}

func (q *activityQueriesImpl) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]*ActivityView, error) {
	return q.repo.FindByEntity(ctx, entityType, entityID, int32(ValidateLimit(limit)))
}
