package response

import (
	"trainhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PublicationResponse struct {
	ID            string            `json:"id"`
	DraftID       string            `json:"draft_id"`
	State         string            `json:"state"`
	SyncStatus    string            `json:"sync_status"`
	ProductRef    *int64            `json:"product_ref,omitempty"`
	VariantRef    *int64            `json:"variant_ref,omitempty"`
	LastSyncError *string           `json:"last_sync_error,omitempty"`
	PublishedAt   *int64            `json:"published_at,omitempty"`
	CheckoutURL   string            `json:"checkout_url,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     int64             `json:"created_at"`
	UpdatedAt     int64             `json:"updated_at"`
}

func FromPublicationView(v *queries.PublicationView) *PublicationResponse {
	resp := &PublicationResponse{
		ID:            v.ID.String(),
		DraftID:       v.DraftID.String(),
		State:         v.State,
		SyncStatus:    v.SyncStatus,
		ProductRef:    v.ProductRef,
		VariantRef:    v.VariantRef,
		LastSyncError: v.LastSyncError,
		CheckoutURL:   v.CheckoutURL,
		Metadata:      v.Metadata,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
	if v.PublishedAt != nil {
		ts := v.PublishedAt.Unix()
		resp.PublishedAt = &ts
	}
	return resp
}

func FromPublicationHistory(items []*queries.PublicationView) []*PublicationResponse {
	res := make([]*PublicationResponse, len(items))
	for i, it := range items {
		res[i] = FromPublicationView(it)
	}
	return res
}

type ActivityResponse struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id,omitempty"`
	ActorName  string         `json:"actor_name,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Detail     map[string]any `json:"detail,omitempty"`
	CreatedAt  int64          `json:"created_at"`
}

func FromActivityList(items []*queries.ActivityView) []*ActivityResponse {
	res := make([]*ActivityResponse, len(items))
	for i, it := range items {
		resp := &ActivityResponse{
			ID:         it.ID.String(),
			ActorName:  it.ActorName,
			Action:     it.Action,
			EntityType: it.EntityType,
			EntityID:   it.EntityID.String(),
			Detail:     it.Detail,
			CreatedAt:  it.CreatedAt.Unix(),
		}
		if it.ActorID != uuid.Nil {
			resp.ActorID = it.ActorID.String()
		}
		res[i] = resp
	}
	return res
}
