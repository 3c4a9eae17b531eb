package commands

import (
	"context"
	"log/slog"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/domain/user"
	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/clock"
	"trainhub/internal/pkg/errs"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBundleNotFound   = errs.New("bundle not found")
	ErrDraftNotOwned    = errs.New("bundle draft not owned by caller")
	ErrNotAuthorized    = errs.New("caller is not authorized for this operation")
	ErrDomainValidation = errs.New("domain validation error")
)

// DraftContentInput carries the trainer-authored fields of a create or edit.
type DraftContentInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Cadence     string
	Products    []bundle.ProductItem
	Services    []bundle.ServiceItem
	Goals       []string
	ImageURL    string
}

func (in DraftContentInput) toContent() (bundle.Content, error) {
	cadence, err := bundle.NewCadence(in.Cadence)
	if err != nil {
		return bundle.Content{}, err
	}
	content := bundle.Content{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Cadence:     cadence,
		Products:    in.Products,
		Services:    in.Services,
		Goals:       in.Goals,
		ImageURL:    in.ImageURL,
	}
	if err := content.Validate(); err != nil {
		return bundle.Content{}, err
	}
	return content, nil
}

type DraftCommands interface {
	CreateDraft(ctx context.Context, actor Actor, input DraftContentInput) (uuid.UUID, error)
	UpdateDraft(ctx context.Context, actor Actor, draftID uuid.UUID, input DraftContentInput) error
}

type draftCommandsImpl struct {
	uow      shared.UnitOfWork
	drafts   shared.DraftRepository
	imageGen CoverImageGenerator
	clock    clock.Clock
}

func NewDraftCommands(uow shared.UnitOfWork, drafts shared.DraftRepository, imageGen CoverImageGenerator, clk clock.Clock) DraftCommands {
	return &draftCommandsImpl{uow: uow, drafts: drafts, imageGen: imageGen, clock: clk}
}

func (uc *draftCommandsImpl) CreateDraft(ctx context.Context, actor Actor, input DraftContentInput) (uuid.UUID, error) {
	if actor.Role != user.RoleTrainer && actor.Role != user.RoleAdmin {
		return uuid.Nil, ErrNotAuthorized
	}

	content, err := input.toContent()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	if content.ImageURL == "" {
		content.ImageURL = uc.generateCover(ctx, content)
	}

	draft, err := bundle.NewDraft(actor.ID, content, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Drafts().Create(ctx, tx.DB(), draft)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	audit(ctx, uc.uow, shared.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "bundle_draft_created",
		EntityType: "bundle_draft",
		EntityID:   createdID,
	})
	return createdID, nil
}

func (uc *draftCommandsImpl) UpdateDraft(ctx context.Context, actor Actor, draftID uuid.UUID, input DraftContentInput) error {
	content, err := input.toContent()
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	// Pre-read outside the transaction to decide on cover regeneration; the
	// expensive image call must not run inside a DB transaction.
	prior, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return err
	}
	if !prior.IsOwnedBy(actor.ID) && actor.Role != user.RoleAdmin {
		return ErrDraftNotOwned
	}
	content.ImageURL = uc.resolveCover(ctx, prior, content, input.ImageURL)

	var status bundle.Status
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		draft, derr := tx.Drafts().FindByID(ctx, tx.DB(), draftID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBundleNotFound
			}
			return derr
		}
		if !draft.IsOwnedBy(actor.ID) && actor.Role != user.RoleAdmin {
			return ErrDraftNotOwned
		}
		if derr = draft.ApplyEdit(content, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		status = draft.Status()
		return tx.Drafts().Update(ctx, tx.DB(), draft)
	})
	if err != nil {
		return err
	}

	audit(ctx, uc.uow, shared.ActivityEntry{
		ActorID:    actor.ID,
		Action:     "bundle_draft_updated",
		EntityType: "bundle_draft",
		EntityID:   draftID,
		Detail:     map[string]any{"status": status.String()},
	})
	return nil
}

// resolveCover keeps the prior cover unless the diff policy says the product
// mix changed enough to warrant regeneration.
func (uc *draftCommandsImpl) resolveCover(ctx context.Context, prior *bundle.Draft, content bundle.Content, explicit string) string {
	if explicit != "" {
		return explicit
	}
	oldSources := bundle.CoverSources(prior.Content().Products)
	newSources := bundle.CoverSources(content.Products)
	if prior.Content().ImageURL != "" && !bundle.CoverNeedsRegen(oldSources, newSources) {
		return prior.Content().ImageURL
	}
	if url := uc.generateCover(ctx, content); url != "" {
		return url
	}
	return prior.Content().ImageURL
}

func (uc *draftCommandsImpl) generateCover(ctx context.Context, content bundle.Content) string {
	goal := ""
	if len(content.Goals) > 0 {
		goal = content.Goals[0]
	}
	url, err := uc.imageGen.Generate(ctx, CoverRequest{
		Title:    content.Title,
		Goal:     goal,
		Products: bundle.CoverSources(content.Products),
	})
	if err != nil {
		slog.Warn("cover image generation failed, continuing without image", "error", err.Error())
		return ""
	}
	return url
}

func (uc *draftCommandsImpl) loadDraft(ctx context.Context, draftID uuid.UUID) (*bundle.Draft, error) {
	var draft *bundle.Draft
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var derr error
		draft, derr = uc.drafts.FindByID(ctx, dbtx, draftID)
		if derr != nil && infra.IsKind(derr, infra.KindNotFound) {
			return ErrBundleNotFound
		}
		return derr
	})
	if err != nil {
		return nil, err
	}
	return draft, nil
}
