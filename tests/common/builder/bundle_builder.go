//go:build unit || e2e

package builder

import (
	"time"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BundleBuilder struct {
	TrainerID   uuid.UUID
	TrainerName string
	Title       string
	Description string
	Price       decimal.Decimal
	Cadence     bundle.Cadence
	Products    bundle.ProductList
	Services    []bundle.ServiceItem
	Goals       []string
	ImageURL    string
	Now         time.Time
}

func NewBundleBuilder() *BundleBuilder {
	return &BundleBuilder{
		TrainerID:   uuid.New(),
		TrainerName: "Test Trainer",
		Title:       "Strength Starter Pack",
		Description: "Twelve weeks of progressive overload with matching supplements.",
		Price:       decimal.NewFromInt(149),
		Cadence:     bundle.CadenceOneTime,
		Products: bundle.ProductList{
			{RemoteRef: 101, Name: "Whey Protein 1kg", Quantity: 2, UnitPrice: decimal.NewFromInt(35), ImageURL: "https://cdn.example.com/whey.png"},
			{RemoteRef: 102, Name: "Resistance Bands", Quantity: 1, UnitPrice: decimal.NewFromInt(19), ImageURL: "https://cdn.example.com/bands.png"},
		},
		Services: []bundle.ServiceItem{
			{RemoteRef: 201, Name: "1:1 Coaching Call", Sessions: 4},
		},
		Goals: []string{"strength"},
		Now:   time.Now(),
	}
}

func (b *BundleBuilder) With(mutate func(*BundleBuilder)) *BundleBuilder {
	mutate(b)
	return b
}

func (b *BundleBuilder) WithTitle(title string) *BundleBuilder {
	b.Title = title
	return b
}

func (b *BundleBuilder) WithPrice(price decimal.Decimal) *BundleBuilder {
	b.Price = price
	return b
}

func (b *BundleBuilder) WithProducts(products bundle.ProductList) *BundleBuilder {
	b.Products = products
	return b
}

func (b *BundleBuilder) WithTrainerID(id uuid.UUID) *BundleBuilder {
	b.TrainerID = id
	return b
}

// Build methods
func (b *BundleBuilder) BuildContent() bundle.Content {
	return bundle.Content{
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Cadence:     b.Cadence,
		Products:    b.Products,
		Services:    b.Services,
		Goals:       b.Goals,
		ImageURL:    b.ImageURL,
	}
}

func (b *BundleBuilder) BuildDomain() (*bundle.Draft, error) {
	return bundle.NewDraft(b.TrainerID, b.BuildContent(), b.Now)
}

// BuildPublished walks a fresh draft through submit, approve and a successful
// sync so tests can start from a live bundle.
func (b *BundleBuilder) BuildPublished(productRef, variantRef int64) (*bundle.Draft, error) {
	draft, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if err := draft.Submit(b.Now); err != nil {
		return nil, err
	}
	if err := draft.Approve(uuid.New(), b.Now); err != nil {
		return nil, err
	}
	if err := draft.MarkPublished(productRef, variantRef, b.Now); err != nil {
		return nil, err
	}
	return draft, nil
}

func (b *BundleBuilder) BuildContentRequestDTO() map[string]any {
	products := make([]map[string]any, len(b.Products))
	for i, p := range b.Products {
		products[i] = map[string]any{
			"remote_ref": p.RemoteRef,
			"name":       p.Name,
			"quantity":   p.Quantity,
			"unit_price": p.UnitPrice.String(),
			"image_url":  p.ImageURL,
		}
	}
	services := make([]map[string]any, len(b.Services))
	for i, s := range b.Services {
		services[i] = map[string]any{
			"remote_ref": s.RemoteRef,
			"name":       s.Name,
			"sessions":   s.Sessions,
		}
	}
	return map[string]any{
		"title":       b.Title,
		"description": b.Description,
		"price":       b.Price.String(),
		"cadence":     b.Cadence.String(),
		"products":    products,
		"services":    services,
		"goals":       b.Goals,
	}
}

func (b *BundleBuilder) BuildDraftView() *queries.DraftView {
	products := make([]queries.ProductItemView, len(b.Products))
	for i, p := range b.Products {
		products[i] = queries.ProductItemView{
			RemoteRef: p.RemoteRef,
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			ImageURL:  p.ImageURL,
		}
	}
	services := make([]queries.ServiceItemView, len(b.Services))
	for i, s := range b.Services {
		services[i] = queries.ServiceItemView{
			RemoteRef: s.RemoteRef,
			Name:      s.Name,
			Sessions:  s.Sessions,
		}
	}
	return &queries.DraftView{
		ID:          uuid.New(),
		TrainerID:   b.TrainerID,
		TrainerName: b.TrainerName,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Cadence:     b.Cadence.String(),
		Status:      bundle.StatusDraft.String(),
		Products:    products,
		Services:    services,
		Goals:       b.Goals,
		ImageURL:    b.ImageURL,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

func (b *BundleBuilder) BuildListItem() *queries.DraftListItem {
	return &queries.DraftListItem{
		ID:          uuid.New(),
		TrainerID:   b.TrainerID,
		TrainerName: b.TrainerName,
		Title:       b.Title,
		Price:       b.Price,
		Cadence:     b.Cadence.String(),
		Status:      bundle.StatusDraft.String(),
		ImageURL:    b.ImageURL,
		CreatedAt:   b.Now,
	}
}
