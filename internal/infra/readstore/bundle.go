package readstore

import (
	"context"
	"encoding/json"
	"time"

	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"
	"trainhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type productItemDoc struct {
	RemoteRef int64           `json:"remote_ref"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type serviceItemDoc struct {
	RemoteRef int64  `json:"remote_ref"`
	Name      string `json:"name"`
	Sessions  int32  `json:"sessions"`
}

type snapshotViewDoc struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Cadence     string           `json:"cadence"`
	Products    []productItemDoc `json:"products"`
	Services    []serviceItemDoc `json:"services"`
	Goals       []string         `json:"goals"`
	ImageURL    string           `json:"image_url,omitempty"`
	CapturedAt  time.Time        `json:"captured_at"`
}

type BundleReadStore struct {
	db db.DBTX
}

func NewBundleReadStore(dbtx db.DBTX) *BundleReadStore {
	return &BundleReadStore{db: dbtx}
}

const findDraftViewSQL = `
SELECT d.id, d.trainer_id, u.display_name,
       d.title, d.description, d.price, d.cadence, d.status,
       d.products, d.services, d.goals, d.image_url, d.published_snapshot,
       d.review_notes, d.submitted_at, d.remote_product_ref, d.remote_variant_ref,
       d.created_at, d.updated_at
FROM bundle_drafts d
JOIN users u ON u.id = d.trainer_id
WHERE d.id = $1`

func (r *BundleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DraftView, error) {
	var (
		view                               queries.DraftView
		price                              pgtype.Numeric
		productsRaw, servicesRaw, goalsRaw []byte
		snapshotRaw                        []byte
		reviewNotes                        pgtype.Text
		submittedAt                        pgtype.Timestamptz
		remoteProductRef, remoteVariantRef pgtype.Int8
		createdAt, updatedAt               pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findDraftViewSQL, id).Scan(
		&view.ID, &view.TrainerID, &view.TrainerName,
		&view.Title, &view.Description, &price, &view.Cadence, &view.Status,
		&productsRaw, &servicesRaw, &goalsRaw, &view.ImageURL, &snapshotRaw,
		&reviewNotes, &submittedAt, &remoteProductRef, &remoteVariantRef,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bundle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bundle view", err)
	}

	view.Price = pgconv.DecimalFromPgtype(price)
	view.ReviewNotes = pgconv.StringPtrFromPgtype(reviewNotes)
	view.SubmittedAt = pgconv.TimePtrFromPgtype(submittedAt)
	view.RemoteProductRef = pgconv.Int64PtrFromPgtype(remoteProductRef)
	view.RemoteVariantRef = pgconv.Int64PtrFromPgtype(remoteVariantRef)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if err := decodeContent(productsRaw, servicesRaw, goalsRaw, &view); err != nil {
		return nil, infra.WrapRepoErr("failed to decode bundle content", err)
	}
	snapshot, err := decodeSnapshotView(snapshotRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode published snapshot", err)
	}
	view.Snapshot = snapshot
	return &view, nil
}

const listDraftsByTrainerFirstPageSQL = `
SELECT d.id, d.trainer_id, u.display_name, d.title, d.price, d.cadence,
       d.status, d.image_url, d.submitted_at, d.created_at
FROM bundle_drafts d
JOIN users u ON u.id = d.trainer_id
WHERE d.trainer_id = $1
ORDER BY d.created_at DESC, d.id DESC
LIMIT $2`

func (r *BundleReadStore) FindByTrainerFirstPage(ctx context.Context, trainerID uuid.UUID, limit int32) ([]*queries.DraftListItem, error) {
	rows, err := r.db.Query(ctx, listDraftsByTrainerFirstPageSQL, trainerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundles by trainer", err)
	}
	return scanDraftListItems(rows)
}

const listDraftsByTrainerKeysetSQL = `
SELECT d.id, d.trainer_id, u.display_name, d.title, d.price, d.cadence,
       d.status, d.image_url, d.submitted_at, d.created_at
FROM bundle_drafts d
JOIN users u ON u.id = d.trainer_id
WHERE d.trainer_id = $1 AND (d.created_at, d.id) < ($2, $3)
ORDER BY d.created_at DESC, d.id DESC
LIMIT $4`

func (r *BundleReadStore) FindByTrainerKeyset(ctx context.Context, trainerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.DraftListItem, error) {
	rows, err := r.db.Query(ctx, listDraftsByTrainerKeysetSQL, trainerID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundles by trainer", err)
	}
	return scanDraftListItems(rows)
}

// The review queue orders by submission time so the oldest waiting bundle
// surfaces first.
const listAwaitingReviewFirstPageSQL = `
SELECT d.id, d.trainer_id, u.display_name, d.title, d.price, d.cadence,
       d.status, d.image_url, d.submitted_at, d.created_at
FROM bundle_drafts d
JOIN users u ON u.id = d.trainer_id
WHERE d.status IN ('pending_review', 'pending_update')
ORDER BY d.submitted_at ASC, d.id ASC
LIMIT $1`

func (r *BundleReadStore) FindAwaitingReviewFirstPage(ctx context.Context, limit int32) ([]*queries.DraftListItem, error) {
	rows, err := r.db.Query(ctx, listAwaitingReviewFirstPageSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list review queue", err)
	}
	return scanDraftListItems(rows)
}

const listAwaitingReviewKeysetSQL = `
SELECT d.id, d.trainer_id, u.display_name, d.title, d.price, d.cadence,
       d.status, d.image_url, d.submitted_at, d.created_at
FROM bundle_drafts d
JOIN users u ON u.id = d.trainer_id
WHERE d.status IN ('pending_review', 'pending_update')
  AND (d.submitted_at, d.id) > ($1, $2)
ORDER BY d.submitted_at ASC, d.id ASC
LIMIT $3`

func (r *BundleReadStore) FindAwaitingReviewKeyset(ctx context.Context, lastSubmittedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.DraftListItem, error) {
	rows, err := r.db.Query(ctx, listAwaitingReviewKeysetSQL, pgconv.TimeToPgtype(lastSubmittedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list review queue", err)
	}
	return scanDraftListItems(rows)
}

const listDecisionsByDraftSQL = `
SELECT rd.id, rd.draft_id, rd.reviewer_id, u.display_name, rd.verdict, rd.notes, rd.decided_at
FROM review_decisions rd
JOIN users u ON u.id = rd.reviewer_id
WHERE rd.draft_id = $1
ORDER BY rd.decided_at DESC`

func (r *BundleReadStore) FindDecisionsByDraft(ctx context.Context, draftID uuid.UUID) ([]*queries.DecisionView, error) {
	rows, err := r.db.Query(ctx, listDecisionsByDraftSQL, draftID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list review decisions", err)
	}
	defer rows.Close()

	var out []*queries.DecisionView
	for rows.Next() {
		var (
			view      queries.DecisionView
			decidedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.DraftID, &view.ReviewerID, &view.Reviewer, &view.Verdict, &view.Notes, &decidedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review decision", err)
		}
		view.DecidedAt = pgconv.TimeFromPgtype(decidedAt)
		out = append(out, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review decisions", err)
	}
	return out, nil
}

const findDraftStatusSQL = `
SELECT id, trainer_id, status FROM bundle_drafts WHERE id = $1`

// FindStatus is the cheap pre-transaction guard read used by commands.
func (r *BundleReadStore) FindStatus(ctx context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, string, error) {
	var draftID, trainerID uuid.UUID
	var status string
	err := r.db.QueryRow(ctx, findDraftStatusSQL, id).Scan(&draftID, &trainerID, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, uuid.Nil, "", infra.WrapRepoErr("bundle not found", err, infra.KindNotFound)
		}
		return uuid.Nil, uuid.Nil, "", infra.WrapRepoErr("failed to find bundle status", err)
	}
	return draftID, trainerID, status, nil
}

func scanDraftListItems(rows pgx.Rows) ([]*queries.DraftListItem, error) {
	defer rows.Close()

	var out []*queries.DraftListItem
	for rows.Next() {
		var (
			item        queries.DraftListItem
			price       pgtype.Numeric
			submittedAt pgtype.Timestamptz
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.TrainerID, &item.TrainerName, &item.Title, &price, &item.Cadence,
			&item.Status, &item.ImageURL, &submittedAt, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bundle list item", err)
		}
		item.Price = pgconv.DecimalFromPgtype(price)
		item.SubmittedAt = pgconv.TimePtrFromPgtype(submittedAt)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bundle list", err)
	}
	return out, nil
}

func decodeContent(productsRaw, servicesRaw, goalsRaw []byte, view *queries.DraftView) error {
	var pDocs []productItemDoc
	if err := json.Unmarshal(productsRaw, &pDocs); err != nil {
		return err
	}
	view.Products = productViews(pDocs)

	var sDocs []serviceItemDoc
	if err := json.Unmarshal(servicesRaw, &sDocs); err != nil {
		return err
	}
	view.Services = serviceViews(sDocs)

	if len(goalsRaw) > 0 {
		if err := json.Unmarshal(goalsRaw, &view.Goals); err != nil {
			return err
		}
	}
	return nil
}

func decodeSnapshotView(raw []byte) (*queries.SnapshotView, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc snapshotViewDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &queries.SnapshotView{
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		Cadence:     doc.Cadence,
		Products:    productViews(doc.Products),
		Services:    serviceViews(doc.Services),
		Goals:       doc.Goals,
		ImageURL:    doc.ImageURL,
		CapturedAt:  doc.CapturedAt,
	}, nil
}

func serviceViews(docs []serviceItemDoc) []queries.ServiceItemView {
	out := make([]queries.ServiceItemView, 0, len(docs))
	for _, d := range docs {
		out = append(out, queries.ServiceItemView{
			RemoteRef: d.RemoteRef,
			Name:      d.Name,
			Sessions:  d.Sessions,
		})
	}
	return out
}

func productViews(docs []productItemDoc) []queries.ProductItemView {
	out := make([]queries.ProductItemView, 0, len(docs))
	for _, d := range docs {
		out = append(out, queries.ProductItemView{
			RemoteRef: d.RemoteRef,
			Name:      d.Name,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			ImageURL:  d.ImageURL,
		})
	}
	return out
}
