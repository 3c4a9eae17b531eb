package commands

import (
	"context"
	"log/slog"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/infra"
	"trainhub/internal/infra/commerce"
	"trainhub/internal/pkg/clock"
	"trainhub/internal/pkg/errs"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoPublication = errs.New("no publication record for bundle")

// PublicationCommands executes queued sync rounds against the commerce
// platform. The network call runs between two transactions: one claims the
// job and reads state, the second records the outcome atomically.
type PublicationCommands interface {
	// ProcessNextJob claims and executes one queued publish job. It reports
	// whether a job was found; a sync failure is recorded on the publication
	// and does not surface as an error.
	ProcessNextJob(ctx context.Context) (bool, error)
}

type publicationCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway commerce.Gateway
	clock   clock.Clock
}

func NewPublicationCommands(uow shared.UnitOfWork, gateway commerce.Gateway, clk clock.Clock) PublicationCommands {
	return &publicationCommandsImpl{uow: uow, gateway: gateway, clock: clk}
}

func (uc *publicationCommandsImpl) ProcessNextJob(ctx context.Context) (bool, error) {
	var (
		job   *shared.PublishJob
		draft *bundle.Draft
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		job, derr = tx.PublishJobs().ClaimNext(ctx, tx.DB(), uc.clock.Now())
		if derr != nil || job == nil {
			return derr
		}
		draft, derr = tx.Drafts().FindByID(ctx, tx.DB(), job.DraftID)
		return derr
	})
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, nil
	}

	if draft.Status() != bundle.StatusPublishing {
		// Stale job: the draft moved on (or never reached publishing).
		slog.Warn("skipping stale publish job",
			"draft_id", draft.ID().String(),
			"status", draft.Status().String())
		return true, uc.finishJob(ctx, job.ID, nil)
	}

	refs, syncErr := uc.syncDraft(ctx, draft)
	if err := uc.recordOutcome(ctx, job, draft.ID(), refs, syncErr); err != nil {
		return true, err
	}
	return true, nil
}

// syncDraft pushes the draft to the platform. First publish sends the full
// listing spec; an update round pushes attributes only, addressed by the
// remote refs written at first publish.
func (uc *publicationCommandsImpl) syncDraft(ctx context.Context, draft *bundle.Draft) (commerce.RemoteRefs, error) {
	content := draft.Content()

	if !draft.EverPublished() {
		items := make([]commerce.ListingItem, 0, len(content.Products))
		for _, p := range content.Products {
			items = append(items, commerce.ListingItem{
				RemoteRef: p.RemoteRef,
				Name:      p.Name,
				Quantity:  p.Quantity,
				UnitPrice: p.UnitPrice,
			})
		}
		return uc.gateway.Publish(ctx, commerce.ListingSpec{
			Title:       content.Title,
			Description: content.Description,
			Price:       content.Price,
			ImageURL:    content.ImageURL,
			Items:       items,
		})
	}

	refs := commerce.RemoteRefs{
		ProductRef: *draft.RemoteProductRef(),
		VariantRef: *draft.RemoteVariantRef(),
	}
	err := uc.gateway.Resync(ctx, refs, commerce.ListingUpdate{
		Title:       content.Title,
		Description: content.Description,
		Price:       content.Price,
		ImageURL:    content.ImageURL,
		Active:      true,
	})
	return refs, err
}

func (uc *publicationCommandsImpl) recordOutcome(ctx context.Context, job *shared.PublishJob, draftID uuid.UUID, refs commerce.RemoteRefs, syncErr error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		draft, derr := tx.Drafts().FindByID(ctx, tx.DB(), draftID)
		if derr != nil {
			return derr
		}
		pub, derr := tx.Publications().FindActiveByDraftID(ctx, tx.DB(), draftID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrNoPublication
			}
			return derr
		}
		now := uc.clock.Now()

		if syncErr == nil {
			if derr = draft.MarkPublished(refs.ProductRef, refs.VariantRef, now); derr != nil {
				return derr
			}
			if derr = pub.MarkSynced(refs.ProductRef, refs.VariantRef, now); derr != nil {
				return derr
			}
		} else {
			if derr = draft.MarkPublishFailed(now); derr != nil {
				return derr
			}
			if derr = pub.MarkSyncFailed(classifySyncError(syncErr), now); derr != nil {
				return derr
			}
		}

		if derr = tx.Drafts().Update(ctx, tx.DB(), draft); derr != nil {
			return derr
		}
		if derr = tx.Publications().Update(ctx, tx.DB(), pub); derr != nil {
			return derr
		}
		if syncErr == nil {
			return tx.PublishJobs().MarkDone(ctx, tx.DB(), job.ID)
		}
		return tx.PublishJobs().MarkFailed(ctx, tx.DB(), job.ID, syncErr.Error())
	})
	if err != nil {
		return err
	}

	action := "bundle_published"
	detail := map[string]any{"remote_product_ref": refs.ProductRef}
	if syncErr != nil {
		action = "bundle_publish_failed"
		detail = map[string]any{"reason": classifySyncError(syncErr)}
	}
	audit(ctx, uc.uow, shared.ActivityEntry{
		ActorID:    uuid.Nil,
		Action:     action,
		EntityType: "bundle_draft",
		EntityID:   draftID,
		Detail:     detail,
	})
	return nil
}

func (uc *publicationCommandsImpl) finishJob(ctx context.Context, jobID uuid.UUID, syncErr error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if syncErr != nil {
			return tx.PublishJobs().MarkFailed(ctx, tx.DB(), jobID, syncErr.Error())
		}
		return tx.PublishJobs().MarkDone(ctx, tx.DB(), jobID)
	})
}

// classifySyncError persists the transient/rejected distinction alongside the
// message so callers and future retry policy can tell them apart.
func classifySyncError(err error) string {
	switch {
	case commerce.IsTransient(err):
		return "transient: " + err.Error()
	case commerce.IsRejected(err):
		return "rejected: " + err.Error()
	default:
		return err.Error()
	}
}
