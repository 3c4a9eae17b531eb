package response

import (
	"trainhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProductItemResponse struct {
	RemoteRef int64  `json:"remote_ref"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	ImageURL  string `json:"image_url,omitempty"`
}

type ServiceItemResponse struct {
	RemoteRef int64  `json:"remote_ref"`
	Name      string `json:"name"`
	Sessions  int32  `json:"sessions"`
}

type SnapshotResponse struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Price       string                `json:"price"`
	Cadence     string                `json:"cadence"`
	Products    []ProductItemResponse `json:"products"`
	Services    []ServiceItemResponse `json:"services"`
	Goals       []string              `json:"goals"`
	ImageURL    string                `json:"image_url,omitempty"`
	CapturedAt  int64                 `json:"captured_at"`
}

type BundleResponse struct {
	ID               string                `json:"id"`
	TrainerID        string                `json:"trainer_id"`
	TrainerName      string                `json:"trainer_name"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Price            string                `json:"price"`
	Cadence          string                `json:"cadence"`
	Status           string                `json:"status"`
	Products         []ProductItemResponse `json:"products"`
	Services         []ServiceItemResponse `json:"services"`
	Goals            []string              `json:"goals"`
	ImageURL         string                `json:"image_url,omitempty"`
	Snapshot         *SnapshotResponse     `json:"published_snapshot,omitempty"`
	ReviewNotes      *string               `json:"review_notes,omitempty"`
	SubmittedAt      *int64                `json:"submitted_at,omitempty"`
	RemoteProductRef *int64                `json:"remote_product_ref,omitempty"`
	RemoteVariantRef *int64                `json:"remote_variant_ref,omitempty"`
	CreatedAt        int64                 `json:"created_at"`
	UpdatedAt        int64                 `json:"updated_at"`
}

func FromDraftView(v *queries.DraftView) *BundleResponse {
	resp := &BundleResponse{
		ID:               v.ID.String(),
		TrainerID:        v.TrainerID.String(),
		TrainerName:      v.TrainerName,
		Title:            v.Title,
		Description:      v.Description,
		Price:            v.Price.String(),
		Cadence:          v.Cadence,
		Status:           v.Status,
		Products:         productItems(v.Products),
		Goals:            v.Goals,
		ImageURL:         v.ImageURL,
		ReviewNotes:      v.ReviewNotes,
		RemoteProductRef: v.RemoteProductRef,
		RemoteVariantRef: v.RemoteVariantRef,
		CreatedAt:        v.CreatedAt.Unix(),
		UpdatedAt:        v.UpdatedAt.Unix(),
	}
	// Field-for-field copies ride on copier; only shape changes are manual.
	_ = copier.Copy(&resp.Services, v.Services)
	if v.SubmittedAt != nil {
		ts := v.SubmittedAt.Unix()
		resp.SubmittedAt = &ts
	}
	if v.Snapshot != nil {
		resp.Snapshot = &SnapshotResponse{
			Title:       v.Snapshot.Title,
			Description: v.Snapshot.Description,
			Price:       v.Snapshot.Price.String(),
			Cadence:     v.Snapshot.Cadence,
			Products:    productItems(v.Snapshot.Products),
			Goals:       v.Snapshot.Goals,
			ImageURL:    v.Snapshot.ImageURL,
			CapturedAt:  v.Snapshot.CapturedAt.Unix(),
		}
		_ = copier.Copy(&resp.Snapshot.Services, v.Snapshot.Services)
	}
	return resp
}

type BundleListItemResponse struct {
	ID          string `json:"id"`
	TrainerID   string `json:"trainer_id"`
	TrainerName string `json:"trainer_name"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Cadence     string `json:"cadence"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url,omitempty"`
	SubmittedAt *int64 `json:"submitted_at,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

type BundleListResponse struct {
	Items      []*BundleListItemResponse `json:"items"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

func FromDraftList(items []*queries.DraftListItem, next *queries.Cursor) *BundleListResponse {
	resp := &BundleListResponse{Items: make([]*BundleListItemResponse, len(items))}
	for i, it := range items {
		item := &BundleListItemResponse{
			ID:          it.ID.String(),
			TrainerID:   it.TrainerID.String(),
			TrainerName: it.TrainerName,
			Title:       it.Title,
			Price:       it.Price.String(),
			Cadence:     it.Cadence,
			Status:      it.Status,
			ImageURL:    it.ImageURL,
			CreatedAt:   it.CreatedAt.Unix(),
		}
		if it.SubmittedAt != nil {
			ts := it.SubmittedAt.Unix()
			item.SubmittedAt = &ts
		}
		resp.Items[i] = item
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

type DecisionResponse struct {
	ID         string `json:"id"`
	DraftID    string `json:"draft_id"`
	ReviewerID string `json:"reviewer_id"`
	Reviewer   string `json:"reviewer"`
	Verdict    string `json:"verdict"`
	Notes      string `json:"notes,omitempty"`
	DecidedAt  int64  `json:"decided_at"`
}

func FromDecisionList(items []*queries.DecisionView) []*DecisionResponse {
	res := make([]*DecisionResponse, len(items))
	for i, it := range items {
		res[i] = &DecisionResponse{
			ID:         it.ID.String(),
			DraftID:    it.DraftID.String(),
			ReviewerID: it.ReviewerID.String(),
			Reviewer:   it.Reviewer,
			Verdict:    it.Verdict,
			Notes:      it.Notes,
			DecidedAt:  it.DecidedAt.Unix(),
		}
	}
	return res
}

func productItems(items []queries.ProductItemView) []ProductItemResponse {
	res := make([]ProductItemResponse, len(items))
	for i, it := range items {
		res[i] = ProductItemResponse{
			RemoteRef: it.RemoteRef,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
			ImageURL:  it.ImageURL,
		}
	}
	return res
}
