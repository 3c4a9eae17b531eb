package request

import (
	"trainhub/internal/domain/bundle"
	"trainhub/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ProductItemRequest struct {
	RemoteRef int64  `json:"remote_ref" binding:"required"`
	Name      string `json:"name" binding:"required,max=200"`
	Quantity  int32  `json:"quantity" binding:"required,min=1,max=100"`
	UnitPrice string `json:"unit_price" binding:"required"`
	ImageURL  string `json:"image_url" binding:"omitempty,url"`
}

type ServiceItemRequest struct {
	RemoteRef int64  `json:"remote_ref" binding:"required"`
	Name      string `json:"name" binding:"required,max=200"`
	Sessions  int32  `json:"sessions" binding:"required,min=1"`
}

// BundleContentRequest is shared by create and full update; both carry the
// complete authored content.
type BundleContentRequest struct {
	Title       string               `json:"title" binding:"required,max=120"`
	Description string               `json:"description" binding:"max=5000"`
	Price       string               `json:"price" binding:"required"`
	Cadence     string               `json:"cadence" binding:"required,oneof=one_time weekly monthly"`
	Products    []ProductItemRequest `json:"products" binding:"dive"`
	Services    []ServiceItemRequest `json:"services" binding:"dive"`
	Goals       []string             `json:"goals" binding:"max=10,dive,max=100"`
	ImageURL    string               `json:"image_url" binding:"omitempty,url"`
}

func (r *BundleContentRequest) ToInput() (commands.DraftContentInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return commands.DraftContentInput{}, err
	}

	products := make([]bundle.ProductItem, 0, len(r.Products))
	for _, p := range r.Products {
		unitPrice, err := decimal.NewFromString(p.UnitPrice)
		if err != nil {
			return commands.DraftContentInput{}, err
		}
		products = append(products, bundle.ProductItem{
			RemoteRef: p.RemoteRef,
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: unitPrice,
			ImageURL:  p.ImageURL,
		})
	}

	services := make([]bundle.ServiceItem, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, bundle.ServiceItem{
			RemoteRef: s.RemoteRef,
			Name:      s.Name,
			Sessions:  s.Sessions,
		})
	}

	return commands.DraftContentInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       price,
		Cadence:     r.Cadence,
		Products:    products,
		Services:    services,
		Goals:       r.Goals,
		ImageURL:    r.ImageURL,
	}, nil
}
