package writerepo

import (
	"context"
	"encoding/json"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DraftRepository struct{}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{}
}

const insertDraftSQL = `
INSERT INTO bundle_drafts (
    id, trainer_id, title, description, price, cadence,
    products, services, goals, image_url, status, published_snapshot,
    reviewed_by, reviewed_at, review_notes, submitted_at,
    remote_product_ref, remote_variant_ref, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
    $13, $14, $15, $16, $17, $18, $19, $20
)`

func (r *DraftRepository) Create(ctx context.Context, dbtx db.DBTX, draft *bundle.Draft) (uuid.UUID, error) {
	args, err := draftArgs(draft)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode draft content", err)
	}
	if _, err := dbtx.Exec(ctx, insertDraftSQL, args...); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create bundle draft", err)
	}
	return draft.ID(), nil
}

const updateDraftSQL = `
UPDATE bundle_drafts SET
    title = $2, description = $3, price = $4, cadence = $5,
    products = $6, services = $7, goals = $8, image_url = $9,
    status = $10, published_snapshot = $11,
    reviewed_by = $12, reviewed_at = $13, review_notes = $14, submitted_at = $15,
    remote_product_ref = $16, remote_variant_ref = $17, updated_at = $18
WHERE id = $1`

func (r *DraftRepository) Update(ctx context.Context, dbtx db.DBTX, draft *bundle.Draft) error {
	args, err := draftArgs(draft)
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft content", err)
	}
	// Same argument list as insert minus trainer_id and created_at.
	updateArgs := make([]any, 0, 18)
	updateArgs = append(updateArgs, args[0])
	updateArgs = append(updateArgs, args[2:18]...)
	updateArgs = append(updateArgs, args[19])
	tag, err := dbtx.Exec(ctx, updateDraftSQL, updateArgs...)
	if err != nil {
		return infra.WrapRepoErr("failed to update bundle draft", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bundle draft not found", nil, infra.KindNotFound)
	}
	return nil
}

const findDraftSQL = `
SELECT id, trainer_id, title, description, price, cadence,
       products, services, goals, image_url, status, published_snapshot,
       reviewed_by, reviewed_at, review_notes, submitted_at,
       remote_product_ref, remote_variant_ref, created_at, updated_at
FROM bundle_drafts
WHERE id = $1
FOR UPDATE`

// FindByID locks the row for the duration of the enclosing transaction so at
// most one lifecycle transition commits per draft at a time.
func (r *DraftRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*bundle.Draft, error) {
	var (
		draftID, trainerID                   uuid.UUID
		title, description, cadence, status  string
		price                                pgtype.Numeric
		productsRaw, servicesRaw, goalsRaw   []byte
		imageURL                             string
		snapshotRaw                          []byte
		reviewedBy                           pgtype.UUID
		reviewedAt, submittedAt              pgtype.Timestamptz
		reviewNotes                          pgtype.Text
		remoteProductRef, remoteVariantRef   pgtype.Int8
		createdAt, updatedAt                 pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, findDraftSQL, id).Scan(
		&draftID, &trainerID, &title, &description, &price, &cadence,
		&productsRaw, &servicesRaw, &goalsRaw, &imageURL, &status, &snapshotRaw,
		&reviewedBy, &reviewedAt, &reviewNotes, &submittedAt,
		&remoteProductRef, &remoteVariantRef, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bundle draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bundle draft", err)
	}

	var pDocs []productDoc
	if err := json.Unmarshal(productsRaw, &pDocs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft products", err)
	}
	var sDocs []serviceDoc
	if err := json.Unmarshal(servicesRaw, &sDocs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft services", err)
	}
	var goals []string
	if len(goalsRaw) > 0 {
		if err := json.Unmarshal(goalsRaw, &goals); err != nil {
			return nil, infra.WrapRepoErr("failed to decode draft goals", err)
		}
	}
	snapshot, err := snapshotFromDoc(snapshotRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode published snapshot", err)
	}

	draftStatus, err := bundle.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid bundle status in storage", err)
	}
	draftCadence, err := bundle.NewCadence(cadence)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid bundle cadence in storage", err)
	}

	content := bundle.Content{
		Title:       title,
		Description: description,
		Price:       pgconv.DecimalFromPgtype(price),
		Cadence:     draftCadence,
		Products:    productsFromDocs(pDocs),
		Services:    servicesFromDocs(sDocs),
		Goals:       goals,
		ImageURL:    imageURL,
	}

	return bundle.ReconstructDraft(
		draftID, trainerID,
		content,
		draftStatus,
		snapshot,
		pgconv.UUIDPtrFromPgtype(reviewedBy),
		pgconv.TimePtrFromPgtype(reviewedAt),
		pgconv.StringPtrFromPgtype(reviewNotes),
		pgconv.TimePtrFromPgtype(submittedAt),
		pgconv.Int64PtrFromPgtype(remoteProductRef),
		pgconv.Int64PtrFromPgtype(remoteVariantRef),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func draftArgs(draft *bundle.Draft) ([]any, error) {
	content := draft.Content()
	products, err := json.Marshal(productDocs(content.Products))
	if err != nil {
		return nil, err
	}
	services, err := json.Marshal(serviceDocs(content.Services))
	if err != nil {
		return nil, err
	}
	goals, err := json.Marshal(content.Goals)
	if err != nil {
		return nil, err
	}
	snapshot, err := snapshotToDoc(draft.PublishedSnapshot())
	if err != nil {
		return nil, err
	}
	return []any{
		draft.ID(),
		draft.TrainerID(),
		content.Title,
		content.Description,
		pgconv.DecimalToPgtype(content.Price),
		content.Cadence.String(),
		products,
		services,
		goals,
		content.ImageURL,
		draft.Status().String(),
		snapshot,
		pgconv.UUIDPtrToPgtype(draft.ReviewedBy()),
		pgconv.TimePtrToPgtype(draft.ReviewedAt()),
		pgconv.StringPtrToPgtype(draft.ReviewNotes()),
		pgconv.TimePtrToPgtype(draft.SubmittedAt()),
		pgconv.Int64PtrToPgtype(draft.RemoteProductRef()),
		pgconv.Int64PtrToPgtype(draft.RemoteVariantRef()),
		pgconv.TimeToPgtype(draft.CreatedAt()),
		pgconv.TimeToPgtype(draft.UpdatedAt()),
	}, nil
}
