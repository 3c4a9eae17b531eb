package commerce

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrorKind classifies adapter failures the way the platform reports them.
type ErrorKind string

const (
	// KindTransient covers network faults, timeouts and rate limits. Eligible
	// for a later manual retry with the same payload.
	KindTransient ErrorKind = "transient"
	// KindRejected means the platform refused the payload. The bundle needs
	// trainer correction before resubmission.
	KindRejected ErrorKind = "rejected"
)

// Error is the typed failure the sync adapter returns instead of crashing.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, msg: msg, err: err}
}

func IsTransient(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransient
}

func IsRejected(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRejected
}

// RemoteRefs are the identifiers the platform assigns to a published bundle.
type RemoteRefs struct {
	ProductRef int64
	VariantRef int64
}

// ListingItem is one line item of a listing as the platform sees it.
type ListingItem struct {
	RemoteRef int64
	Name      string
	Quantity  int32
	UnitPrice decimal.Decimal
}

// ListingSpec is the full payload of a first publish.
type ListingSpec struct {
	Title       string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Items       []ListingItem
}

// ListingUpdate carries the attribute subset pushed on a re-sync. Line items
// of an already-live listing are edited through the component editor, not
// replaced wholesale here.
type ListingUpdate struct {
	Title       string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Active      bool
}

// Metadata is the arbitrary key/value annotations attached to a remote
// product. Read-only, admin display only.
type Metadata map[string]string

// Gateway is the capability interface the publication manager depends on.
//
// Resync is idempotent: two calls with identical fields produce the same
// remote state and never a duplicate listing. FetchMetadata failures must
// never block the state machine; callers degrade to nil.
type Gateway interface {
	Publish(ctx context.Context, spec ListingSpec) (RemoteRefs, error)
	Resync(ctx context.Context, refs RemoteRefs, update ListingUpdate) error
	FetchMetadata(ctx context.Context, remoteProductRef int64) (Metadata, error)
	CheckoutURL(refs RemoteRefs) string
}
