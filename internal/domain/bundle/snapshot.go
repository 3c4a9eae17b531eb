package bundle

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a frozen copy of the content fields as they existed at the last
// successful publish. It exists only while the draft is pending_update (or
// failed after a pending_update); a successful re-sync clears it.
type Snapshot struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Cadence     Cadence
	Products    ProductList
	Services    []ServiceItem
	Goals       []string
	ImageURL    string
	CapturedAt  time.Time
}

func (s Snapshot) clone() Snapshot {
	s.Products = s.Products.clone()
	s.Services = cloneServices(s.Services)
	s.Goals = cloneGoals(s.Goals)
	return s
}
