package queries

import (
	"context"
	"log/slog"
	"time"

	"trainhub/internal/infra"
	"trainhub/internal/infra/commerce"
	"trainhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPublicationNotFound = errs.New("publication not found")

type PublicationView struct {
	ID            uuid.UUID         `json:"id"`
	DraftID       uuid.UUID         `json:"draft_id"`
	TrainerID     uuid.UUID         `json:"-"`
	State         string            `json:"state"`
	SyncStatus    string            `json:"sync_status"`
	ProductRef    *int64            `json:"product_ref,omitempty"`
	VariantRef    *int64            `json:"variant_ref,omitempty"`
	LastSyncError *string           `json:"last_sync_error,omitempty"`
	PublishedAt   *time.Time        `json:"published_at,omitempty"`
	CheckoutURL   string            `json:"checkout_url,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type PublicationReadStore interface {
	FindByDraftID(ctx context.Context, draftID uuid.UUID) (*PublicationView, error)
	FindHistoryByDraftID(ctx context.Context, draftID uuid.UUID) ([]*PublicationView, error)
}

// MetadataCache fronts the commerce metadata lookup. A miss or a cache failure
// falls through to the platform; the cache is never load-bearing.
type MetadataCache interface {
	Get(ctx context.Context, productRef int64) (commerce.Metadata, bool, error)
	Set(ctx context.Context, productRef int64, meta commerce.Metadata) error
}

type PublicationQueries interface {
	// GetByDraftID returns the live listing view enriched with checkout URL and
	// platform metadata. Metadata is best-effort: platform errors degrade to an
	// empty map, never to a failed query. Trainers only see their own bundles,
	// same rule as the draft view.
	GetByDraftID(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) (*PublicationView, error)
	ListHistory(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) ([]*PublicationView, error)
}

type publicationQueriesImpl struct {
	repo    PublicationReadStore
	gateway commerce.Gateway
	cache   MetadataCache
}

func NewPublicationQueries(repo PublicationReadStore, gateway commerce.Gateway, cache MetadataCache) PublicationQueries {
	return &publicationQueriesImpl{repo: repo, gateway: gateway, cache: cache}
}

func (q *publicationQueriesImpl) GetByDraftID(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) (*PublicationView, error) {
	view, err := q.repo.FindByDraftID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPublicationNotFound
		}
		return nil, err
	}
	if view.TrainerID != actorID && actorRole == "trainer" {
		return nil, ErrBundleAccess
	}
	q.enrich(ctx, view)
	return view, nil
}

func (q *publicationQueriesImpl) ListHistory(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) ([]*PublicationView, error) {
	items, err := q.repo.FindHistoryByDraftID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	// Every row belongs to the same draft; checking the first is checking all.
	if len(items) > 0 && items[0].TrainerID != actorID && actorRole == "trainer" {
		return nil, ErrBundleAccess
	}
	return items, nil
}

func (q *publicationQueriesImpl) enrich(ctx context.Context, view *PublicationView) {
	if view.ProductRef == nil || view.VariantRef == nil {
		return
	}
	refs := commerce.RemoteRefs{ProductRef: *view.ProductRef, VariantRef: *view.VariantRef}
	view.CheckoutURL = q.gateway.CheckoutURL(refs)
	view.Metadata = q.fetchMetadata(ctx, refs)
}

func (q *publicationQueriesImpl) fetchMetadata(ctx context.Context, refs commerce.RemoteRefs) map[string]string {
	if meta, ok, err := q.cache.Get(ctx, refs.ProductRef); err == nil && ok {
		return meta
	} else if err != nil {
		slog.Warn("metadata cache read failed", "product_ref", refs.ProductRef, "error", err.Error())
	}

	meta, err := q.gateway.FetchMetadata(ctx, refs.ProductRef)
	if err != nil {
		slog.Warn("metadata fetch failed", "product_ref", refs.ProductRef, "error", err.Error())
		return nil
	}
	if err := q.cache.Set(ctx, refs.ProductRef, meta); err != nil {
		slog.Warn("metadata cache write failed", "product_ref", refs.ProductRef, "error", err.Error())
	}
	return meta
}
