package commands

import (
	"context"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a command. Role checks that
// belong to the lifecycle (owner edits, reviewer verdicts, integration access)
// happen here, not in the HTTP layer.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) CanReview() bool {
	return a.Role.CanReview()
}

func (a Actor) IsIntegration() bool {
	return a.Role == user.RoleIntegration || a.Role == user.RoleAdmin
}

// CoverRequest feeds the cover-image compositor.
type CoverRequest struct {
	Title    string
	Goal     string
	Products []bundle.CoverSource
}

// CoverImageGenerator is the best-effort image collaborator. A failure never
// blocks a bundle create or update; callers degrade to no image.
type CoverImageGenerator interface {
	Generate(ctx context.Context, req CoverRequest) (string, error)
}
