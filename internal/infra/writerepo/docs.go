package writerepo

import (
	"encoding/json"
	"time"

	"trainhub/internal/domain/bundle"

	"github.com/shopspring/decimal"
)

// JSONB documents for the content columns. Kept separate from the domain types
// so column layout can evolve without touching the aggregate.

type productDoc struct {
	RemoteRef int64           `json:"remote_ref"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type serviceDoc struct {
	RemoteRef int64  `json:"remote_ref"`
	Name      string `json:"name"`
	Sessions  int32  `json:"sessions"`
}

type snapshotDoc struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cadence     string          `json:"cadence"`
	Products    []productDoc    `json:"products"`
	Services    []serviceDoc    `json:"services"`
	Goals       []string        `json:"goals"`
	ImageURL    string          `json:"image_url,omitempty"`
	CapturedAt  time.Time       `json:"captured_at"`
}

func productDocs(items bundle.ProductList) []productDoc {
	out := make([]productDoc, 0, len(items))
	for _, p := range items {
		out = append(out, productDoc{
			RemoteRef: p.RemoteRef,
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			ImageURL:  p.ImageURL,
		})
	}
	return out
}

func productsFromDocs(docs []productDoc) bundle.ProductList {
	out := make(bundle.ProductList, 0, len(docs))
	for _, d := range docs {
		out = append(out, bundle.ProductItem{
			RemoteRef: d.RemoteRef,
			Name:      d.Name,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			ImageURL:  d.ImageURL,
		})
	}
	return out
}

func serviceDocs(items []bundle.ServiceItem) []serviceDoc {
	out := make([]serviceDoc, 0, len(items))
	for _, s := range items {
		out = append(out, serviceDoc{RemoteRef: s.RemoteRef, Name: s.Name, Sessions: s.Sessions})
	}
	return out
}

func servicesFromDocs(docs []serviceDoc) []bundle.ServiceItem {
	out := make([]bundle.ServiceItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, bundle.ServiceItem{RemoteRef: d.RemoteRef, Name: d.Name, Sessions: d.Sessions})
	}
	return out
}

func snapshotToDoc(s *bundle.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(snapshotDoc{
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		Cadence:     s.Cadence.String(),
		Products:    productDocs(s.Products),
		Services:    serviceDocs(s.Services),
		Goals:       s.Goals,
		ImageURL:    s.ImageURL,
		CapturedAt:  s.CapturedAt,
	})
}

func snapshotFromDoc(raw []byte) (*bundle.Snapshot, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc snapshotDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	cadence, err := bundle.NewCadence(doc.Cadence)
	if err != nil {
		return nil, err
	}
	return &bundle.Snapshot{
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		Cadence:     cadence,
		Products:    productsFromDocs(doc.Products),
		Services:    servicesFromDocs(doc.Services),
		Goals:       doc.Goals,
		ImageURL:    doc.ImageURL,
		CapturedAt:  doc.CapturedAt,
	}, nil
}
