package commands

import (
	"context"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/domain/publication"
	"trainhub/internal/domain/review"
	"trainhub/internal/infra"
	"trainhub/internal/pkg/clock"
	"trainhub/internal/pkg/errs"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewAlreadyOpen = errs.New("a review request is already pending")
	ErrInvalidState      = errs.New("operation not allowed in current bundle status")
	ErrEmptyReason       = errs.New("rejection reason must not be empty")
)

// ReviewCommands gates every manager-level transition of the bundle
// lifecycle. Each round is opened by Submit and closed by exactly one of
// Approve, Reject or RequestChanges.
type ReviewCommands interface {
	Submit(ctx context.Context, actor Actor, draftID uuid.UUID) error
	Approve(ctx context.Context, actor Actor, draftID uuid.UUID) error
	Reject(ctx context.Context, actor Actor, draftID uuid.UUID, reason string) error
	RequestChanges(ctx context.Context, actor Actor, draftID uuid.UUID, notes string) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) Submit(ctx context.Context, actor Actor, draftID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		draft, derr := uc.findDraft(ctx, tx, draftID)
		if derr != nil {
			return derr
		}
		if !draft.IsOwnedBy(actor.ID) {
			return ErrDraftNotOwned
		}
		if derr = draft.Submit(uc.clock.Now()); derr != nil {
			return mapTransitionErr(derr)
		}
		return tx.Drafts().Update(ctx, tx.DB(), draft)
	})
	if err != nil {
		return err
	}

	audit(ctx, uc.uow, shared.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "bundle_submitted_for_review",
		EntityType: "bundle_draft",
		EntityID:   draftID,
	})
	return nil
}

// Approve closes the round, moves the draft into publishing and enqueues the
// sync job in the same transaction. A crash after commit loses nothing: the
// worker picks the job up whenever it comes back.
func (uc *reviewCommandsImpl) Approve(ctx context.Context, actor Actor, draftID uuid.UUID) error {
	if !actor.CanReview() {
		return ErrNotAuthorized
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		draft, derr := uc.findDraft(ctx, tx, draftID)
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()

		decision, derr := review.NewDecision(draftID, actor.ID, review.VerdictApproved, "", now)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr = draft.Approve(actor.ID, now); derr != nil {
			return mapTransitionErr(derr)
		}

		pub, derr := tx.Publications().FindActiveByDraftID(ctx, tx.DB(), draftID)
		switch {
		case derr == nil:
			pub.BeginSync(now)
			if derr = tx.Publications().Update(ctx, tx.DB(), pub); derr != nil {
				return derr
			}
		case infra.IsKind(derr, infra.KindNotFound):
			if _, derr = tx.Publications().Create(ctx, tx.DB(), publication.NewPublication(draftID, now)); derr != nil {
				return derr
			}
		default:
			return derr
		}

		if derr = tx.Reviews().Append(ctx, tx.DB(), decision); derr != nil {
			return derr
		}
		if derr = tx.Drafts().Update(ctx, tx.DB(), draft); derr != nil {
			return derr
		}
		return tx.PublishJobs().Enqueue(ctx, tx.DB(), draftID, now)
	})
	if err != nil {
		return err
	}

	audit(ctx, uc.uow, shared.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "bundle_approved",
		EntityType: "bundle_draft",
		EntityID:   draftID,
	})
	return nil
}

func (uc *reviewCommandsImpl) Reject(ctx context.Context, actor Actor, draftID uuid.UUID, reason string) error {
	return uc.closeRound(ctx, actor, draftID, review.VerdictRejected, reason, "bundle_rejected")
}

func (uc *reviewCommandsImpl) RequestChanges(ctx context.Context, actor Actor, draftID uuid.UUID, notes string) error {
	return uc.closeRound(ctx, actor, draftID, review.VerdictChangesRequested, notes, "bundle_changes_requested")
}

func (uc *reviewCommandsImpl) closeRound(ctx context.Context, actor Actor, draftID uuid.UUID, verdict review.Verdict, notes, action string) error {
	if !actor.CanReview() {
		return ErrNotAuthorized
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		draft, derr := uc.findDraft(ctx, tx, draftID)
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()

		decision, derr := review.NewDecision(draftID, actor.ID, verdict, notes, now)
		if derr != nil {
			if errs.Is(derr, review.ErrEmptyReason) {
				return ErrEmptyReason
			}
			return errs.Mark(derr, ErrDomainValidation)
		}

		switch verdict {
		case review.VerdictRejected:
			derr = draft.Reject(actor.ID, notes, now)
		case review.VerdictChangesRequested:
			derr = draft.RequestChanges(actor.ID, notes, now)
		default:
			return ErrDomainValidation
		}
		if derr != nil {
			return mapTransitionErr(derr)
		}

		if derr = tx.Reviews().Append(ctx, tx.DB(), decision); derr != nil {
			return derr
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
		Detail:     map[string]any{"verdict": verdict.String()},
	})
	return nil
}

func (uc *reviewCommandsImpl) findDraft(ctx context.Context, tx shared.Tx, draftID uuid.UUID) (*bundle.Draft, error) {
	draft, err := tx.Drafts().FindByID(ctx, tx.DB(), draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBundleNotFound
		}
		return nil, err
	}
	return draft, nil
}

func mapTransitionErr(err error) error {
	switch {
	case errs.Is(err, bundle.ErrReviewAlreadyOpen):
		return ErrReviewAlreadyOpen
	case errs.Is(err, bundle.ErrInvalidTransition), errs.Is(err, bundle.ErrEditWhilePublishing):
		return ErrInvalidState
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
