package request

import (
	"trainhub/internal/domain/bundle"

	"github.com/shopspring/decimal"
)

type SetQuantityRequest struct {
	Quantity int32 `json:"quantity" binding:"required,min=1,max=100"`
}

type AddComponentRequest struct {
	RemoteRef int64  `json:"remote_ref" binding:"required"`
	Name      string `json:"name" binding:"required,max=200"`
	Quantity  int32  `json:"quantity" binding:"required,min=1,max=100"`
	UnitPrice string `json:"unit_price" binding:"required"`
	ImageURL  string `json:"image_url" binding:"omitempty,url"`
}

func (r *AddComponentRequest) ToDomain() (bundle.ProductItem, error) {
	unitPrice, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return bundle.ProductItem{}, err
	}
	return bundle.ProductItem{
		RemoteRef: r.RemoteRef,
		Name:      r.Name,
		Quantity:  r.Quantity,
		UnitPrice: unitPrice,
		ImageURL:  r.ImageURL,
	}, nil
}
