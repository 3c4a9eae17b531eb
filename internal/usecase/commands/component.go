package commands

import (
	"context"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/infra"
	"trainhub/internal/pkg/clock"
	"trainhub/internal/pkg/errs"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBundleNotPublished = errs.New("bundle has no live listing to edit")
	ErrComponentNotFound  = errs.New("component not found in bundle")
)

// ComponentCommands is the extension-facing editor for the product line items
// of a live bundle. Every successful edit re-enters the review flow via
// pending_update; the edit itself is all-or-nothing.
type ComponentCommands interface {
	SetQuantity(ctx context.Context, actor Actor, draftID uuid.UUID, remoteRef int64, quantity int32) error
	Add(ctx context.Context, actor Actor, draftID uuid.UUID, item bundle.ProductItem) error
	Remove(ctx context.Context, actor Actor, draftID uuid.UUID, remoteRef int64) error
}

type componentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewComponentCommands(uow shared.UnitOfWork, clk clock.Clock) ComponentCommands {
	return &componentCommandsImpl{uow: uow, clock: clk}
}

func (uc *componentCommandsImpl) SetQuantity(ctx context.Context, actor Actor, draftID uuid.UUID, remoteRef int64, quantity int32) error {
	return uc.edit(ctx, actor, draftID, "component_quantity_set",
		map[string]any{"remote_ref": remoteRef, "quantity": quantity},
		func(draft *bundle.Draft) error {
			return draft.SetQuantity(remoteRef, quantity, uc.clock.Now())
		})
}

func (uc *componentCommandsImpl) Add(ctx context.Context, actor Actor, draftID uuid.UUID, item bundle.ProductItem) error {
	return uc.edit(ctx, actor, draftID, "component_added",
		map[string]any{"remote_ref": item.RemoteRef, "quantity": item.Quantity},
		func(draft *bundle.Draft) error {
			return draft.AddComponent(item, uc.clock.Now())
		})
}

func (uc *componentCommandsImpl) Remove(ctx context.Context, actor Actor, draftID uuid.UUID, remoteRef int64) error {
	return uc.edit(ctx, actor, draftID, "component_removed",
		map[string]any{"remote_ref": remoteRef},
		func(draft *bundle.Draft) error {
			return draft.RemoveComponent(remoteRef, uc.clock.Now())
		})
}

func (uc *componentCommandsImpl) edit(ctx context.Context, actor Actor, draftID uuid.UUID, action string, detail map[string]any, mutate func(*bundle.Draft) error) error {
	if !actor.IsIntegration() {
		return ErrNotAuthorized
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		draft, derr := tx.Drafts().FindByID(ctx, tx.DB(), draftID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBundleNotFound
			}
			return derr
		}
		if derr = mutate(draft); derr != nil {
			return mapComponentErr(derr)
		}
		return tx.Drafts().Update(ctx, tx.DB(), draft)
	})
	if err != nil {
		return err
	}

	audit(ctx, uc.uow, shared.ActivityEntry{
		ActorID:    actor.ID,
		Action:     action,
		EntityType: "bundle_draft",
		EntityID:   draftID,
		Detail:     detail,
	})
	return nil
}

func mapComponentErr(err error) error {
	switch {
	case errs.Is(err, bundle.ErrNotPublished):
		return ErrBundleNotPublished
	case errs.Is(err, bundle.ErrComponentNotFound):
		return ErrComponentNotFound
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
