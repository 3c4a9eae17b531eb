package bundle

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 100")
	ErrDuplicateRemoteRef = errors.New("remote reference already present in bundle")
	ErrComponentNotFound  = errors.New("component not found in bundle")
	ErrEmptyItemName      = errors.New("line item name must not be empty")
	ErrNegativeUnitPrice  = errors.New("unit price cannot be negative")
)

const (
	MinComponentQty = 1
	MaxComponentQty = 100
)

// ProductItem is the canonical product line item. RemoteRef is the identifier
// assigned by the commerce platform; it is the only key used to address a line
// item after first publish.
type ProductItem struct {
	RemoteRef int64
	Name      string
	Quantity  int32
	UnitPrice decimal.Decimal
	ImageURL  string
}

func (p ProductItem) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyItemName
	}
	if p.Quantity < MinComponentQty || p.Quantity > MaxComponentQty {
		return ErrInvalidQuantity
	}
	if p.UnitPrice.IsNegative() {
		return ErrNegativeUnitPrice
	}
	return nil
}

// ServiceItem is a trainer-delivered service sold inside a bundle.
type ServiceItem struct {
	RemoteRef int64
	Name      string
	Sessions  int32
}

func (s ServiceItem) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyItemName
	}
	if s.Sessions < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

type ProductList []ProductItem

// Validate checks every item and the uniqueness of remote refs within the list.
func (l ProductList) Validate() error {
	seen := make(map[int64]struct{}, len(l))
	for _, item := range l {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.RemoteRef]; ok {
			return ErrDuplicateRemoteRef
		}
		seen[item.RemoteRef] = struct{}{}
	}
	return nil
}

func (l ProductList) indexOf(remoteRef int64) int {
	for i, item := range l {
		if item.RemoteRef == remoteRef {
			return i
		}
	}
	return -1
}

// SetQuantity replaces the quantity of the item addressed by remoteRef.
func (l ProductList) SetQuantity(remoteRef int64, qty int32) error {
	if qty < MinComponentQty || qty > MaxComponentQty {
		return ErrInvalidQuantity
	}
	i := l.indexOf(remoteRef)
	if i < 0 {
		return ErrComponentNotFound
	}
	l[i].Quantity = qty
	return nil
}

// Add appends the item, or merges it into an existing entry with the same
// remote ref by summing quantities. The merged quantity stays bounded.
func (l ProductList) Add(item ProductItem) (ProductList, error) {
	if err := item.Validate(); err != nil {
		return l, err
	}
	i := l.indexOf(item.RemoteRef)
	if i < 0 {
		return append(l, item), nil
	}
	merged := l[i].Quantity + item.Quantity
	if merged > MaxComponentQty {
		return l, ErrInvalidQuantity
	}
	l[i].Quantity = merged
	return l, nil
}

// Remove deletes the item addressed by remoteRef, preserving order.
func (l ProductList) Remove(remoteRef int64) (ProductList, error) {
	i := l.indexOf(remoteRef)
	if i < 0 {
		return l, ErrComponentNotFound
	}
	return append(l[:i:i], l[i+1:]...), nil
}

func (l ProductList) clone() ProductList {
	if l == nil {
		return nil
	}
	out := make(ProductList, len(l))
	copy(out, l)
	return out
}

func cloneServices(items []ServiceItem) []ServiceItem {
	if items == nil {
		return nil
	}
	out := make([]ServiceItem, len(items))
	copy(out, items)
	return out
}

func cloneGoals(goals []string) []string {
	if goals == nil {
		return nil
	}
	out := make([]string, len(goals))
	copy(out, goals)
	return out
}
