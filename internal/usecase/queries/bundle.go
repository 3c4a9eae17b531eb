package queries

import (
	"context"
	"time"

	"trainhub/internal/infra"
	"trainhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBundleNotFound = errs.New("bundle not found")
	ErrBundleAccess   = errs.New("bundle access denied")
	ErrInvalidCursor  = errs.New("invalid cursor")
)

// Read models (DTO for read side)
type ProductItemView struct {
	RemoteRef int64           `json:"remote_ref"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type ServiceItemView struct {
	RemoteRef int64  `json:"remote_ref"`
	Name      string `json:"name"`
	Sessions  int32  `json:"sessions"`
}

type SnapshotView struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Cadence     string            `json:"cadence"`
	Products    []ProductItemView `json:"products"`
	Services    []ServiceItemView `json:"services"`
	Goals       []string          `json:"goals"`
	ImageURL    string            `json:"image_url,omitempty"`
	CapturedAt  time.Time         `json:"captured_at"`
}

type DraftView struct {
	ID               uuid.UUID         `json:"id"`
	TrainerID        uuid.UUID         `json:"trainer_id"`
	TrainerName      string            `json:"trainer_name"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Price            decimal.Decimal   `json:"price"`
	Cadence          string            `json:"cadence"`
	Status           string            `json:"status"`
	Products         []ProductItemView `json:"products"`
	Services         []ServiceItemView `json:"services"`
	Goals            []string          `json:"goals"`
	ImageURL         string            `json:"image_url,omitempty"`
	Snapshot         *SnapshotView     `json:"published_snapshot,omitempty"`
	ReviewNotes      *string           `json:"review_notes,omitempty"`
	SubmittedAt      *time.Time        `json:"submitted_at,omitempty"`
	RemoteProductRef *int64            `json:"remote_product_ref,omitempty"`
	RemoteVariantRef *int64            `json:"remote_variant_ref,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type DraftListItem struct {
	ID          uuid.UUID       `json:"id"`
	TrainerID   uuid.UUID       `json:"trainer_id"`
	TrainerName string          `json:"trainer_name"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Cadence     string          `json:"cadence"`
	Status      string          `json:"status"`
	ImageURL    string          `json:"image_url,omitempty"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type DecisionView struct {
	ID         uuid.UUID `json:"id"`
	DraftID    uuid.UUID `json:"draft_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	Reviewer   string    `json:"reviewer"`
	Verdict    string    `json:"verdict"`
	Notes      string    `json:"notes,omitempty"`
	DecidedAt  time.Time `json:"decided_at"`
}

type BundleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DraftView, error)
	FindByTrainerFirstPage(ctx context.Context, trainerID uuid.UUID, limit int32) ([]*DraftListItem, error)
	FindByTrainerKeyset(ctx context.Context, trainerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*DraftListItem, error)
	FindAwaitingReviewFirstPage(ctx context.Context, limit int32) ([]*DraftListItem, error)
	FindAwaitingReviewKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*DraftListItem, error)
	FindDecisionsByDraft(ctx context.Context, draftID uuid.UUID) ([]*DecisionView, error)
}

type BundleQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*DraftView, error)
	ListByTrainer(ctx context.Context, trainerID uuid.UUID, cursor *Cursor, limit int) ([]*DraftListItem, *Cursor, error)
	// ListAwaitingReview is the manager queue: pending_review and pending_update
	// bundles in submission order.
	ListAwaitingReview(ctx context.Context, cursor *Cursor, limit int) ([]*DraftListItem, *Cursor, error)
	ListDecisions(ctx context.Context, draftID uuid.UUID) ([]*DecisionView, error)
}

type bundleQueriesImpl struct {
	repo BundleReadStore
}

func NewBundleQueries(repo BundleReadStore) BundleQueries {
	return &bundleQueriesImpl{repo: repo}
}

func (q *bundleQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*DraftView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBundleNotFound
		}
		return nil, err
	}
	if view.TrainerID != actorID && actorRole == "trainer" {
		return nil, ErrBundleAccess
	}
	return view, nil
}

func (q *bundleQueriesImpl) ListByTrainer(ctx context.Context, trainerID uuid.UUID, cursor *Cursor, limit int) ([]*DraftListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*DraftListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByTrainerFirstPage(ctx, trainerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByTrainerKeyset(ctx, trainerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginate(rows, limit)
}

func (q *bundleQueriesImpl) ListAwaitingReview(ctx context.Context, cursor *Cursor, limit int) ([]*DraftListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*DraftListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindAwaitingReviewFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindAwaitingReviewKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	// Queue cursors ride on submission time, matching the queue ordering.
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		if last.SubmittedAt != nil {
			next = &Cursor{After: EncodeAfterCursor(*last.SubmittedAt, last.ID)}
		}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *bundleQueriesImpl) ListDecisions(ctx context.Context, draftID uuid.UUID) ([]*DecisionView, error) {
	return q.repo.FindDecisionsByDraft(ctx, draftID)
}

func paginate(rows []*DraftListItem, limit int) ([]*DraftListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
