package commands

import (
	"context"
	"log/slog"

	"trainhub/internal/usecase/shared"
)

// audit appends an activity entry after the lifecycle transition has already
// committed. Audit failures are logged and swallowed; they never surface as
// lifecycle failures.
func audit(ctx context.Context, uow shared.UnitOfWork, entry shared.ActivityEntry) {
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Activity().Append(ctx, tx.DB(), entry)
	})
	if err != nil {
		slog.Warn("activity log append failed",
			"action", entry.Action,
			"entity_id", entry.EntityID.String(),
			"error", err.Error())
	}
}
