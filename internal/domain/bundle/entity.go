package bundle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus       = errors.New("invalid bundle status")
	ErrInvalidCadence      = errors.New("invalid bundle cadence")
	ErrEmptyTitle          = errors.New("bundle title must not be empty")
	ErrNegativePrice       = errors.New("bundle price cannot be negative")
	ErrInvalidTransition   = errors.New("transition not allowed from current status")
	ErrReviewAlreadyOpen   = errors.New("a review request is already pending for this bundle")
	ErrRemoteRefImmutable  = errors.New("remote references are immutable once set")
	ErrNotPublished        = errors.New("bundle is not published")
	ErrEditWhilePublishing = errors.New("bundle is being published and cannot be edited")
)

const maxTitleLength = 120

// Content groups the trainer-authored fields of a draft. It is what gets
// frozen into a Snapshot at publish time and diffed on later edits.
type Content struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Cadence     Cadence
	Products    ProductList
	Services    []ServiceItem
	Goals       []string
	ImageURL    string
}

func (c Content) Validate() error {
	title := strings.TrimSpace(c.Title)
	if title == "" || len(title) > maxTitleLength {
		return ErrEmptyTitle
	}
	if c.Price.IsNegative() {
		return ErrNegativePrice
	}
	if !c.Cadence.IsValid() {
		return ErrInvalidCadence
	}
	if err := c.Products.Validate(); err != nil {
		return err
	}
	for _, s := range c.Services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Draft is the trainer-owned bundle aggregate. All lifecycle transitions are
// guarded here; callers that request an unlisted transition get a domain error
// and no mutation.
type Draft struct {
	id                uuid.UUID
	trainerID         uuid.UUID
	content           Content
	status            Status
	publishedSnapshot *Snapshot
	reviewedBy        *uuid.UUID
	reviewedAt        *time.Time
	reviewNotes       *string
	submittedAt       *time.Time
	remoteProductRef  *int64
	remoteVariantRef  *int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewDraft(trainerID uuid.UUID, content Content, now time.Time) (*Draft, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &Draft{
		id:        uuid.New(),
		trainerID: trainerID,
		content:   content,
		status:    StatusDraft,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDraft(
	id, trainerID uuid.UUID,
	content Content,
	status Status,
	publishedSnapshot *Snapshot,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
	reviewNotes *string,
	submittedAt *time.Time,
	remoteProductRef, remoteVariantRef *int64,
	createdAt, updatedAt time.Time,
) *Draft {
	return &Draft{
		id:                id,
		trainerID:         trainerID,
		content:           content,
		status:            status,
		publishedSnapshot: publishedSnapshot,
		reviewedBy:        reviewedBy,
		reviewedAt:        reviewedAt,
		reviewNotes:       reviewNotes,
		submittedAt:       submittedAt,
		remoteProductRef:  remoteProductRef,
		remoteVariantRef:  remoteVariantRef,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (d *Draft) ID() uuid.UUID               { return d.id }
func (d *Draft) TrainerID() uuid.UUID        { return d.trainerID }
func (d *Draft) Content() Content            { return d.content }
func (d *Draft) Status() Status              { return d.status }
func (d *Draft) ReviewedBy() *uuid.UUID      { return d.reviewedBy }
func (d *Draft) ReviewedAt() *time.Time      { return d.reviewedAt }
func (d *Draft) ReviewNotes() *string        { return d.reviewNotes }
func (d *Draft) SubmittedAt() *time.Time     { return d.submittedAt }
func (d *Draft) RemoteProductRef() *int64    { return d.remoteProductRef }
func (d *Draft) RemoteVariantRef() *int64    { return d.remoteVariantRef }
func (d *Draft) CreatedAt() time.Time        { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time        { return d.updatedAt }
func (d *Draft) IsOwnedBy(id uuid.UUID) bool { return d.trainerID == id }

// PublishedSnapshot returns the frozen last-published content, or nil when the
// draft carries no pending diff state.
func (d *Draft) PublishedSnapshot() *Snapshot {
	if d.publishedSnapshot == nil {
		return nil
	}
	s := d.publishedSnapshot.clone()
	return &s
}

// EverPublished reports whether the bundle has a live remote listing.
func (d *Draft) EverPublished() bool {
	return d.remoteProductRef != nil
}

// Submit opens a review round. A second submit while one is already open is
// rejected, not queued. Bundles that already have a remote listing re-enter
// review as pending_update so the reviewer sees it as an update.
func (d *Draft) Submit(now time.Time) error {
	if d.status.AwaitingReview() {
		return ErrReviewAlreadyOpen
	}
	switch d.status {
	case StatusDraft, StatusRejected, StatusFailed:
	default:
		return ErrInvalidTransition
	}
	if d.EverPublished() {
		d.status = StatusPendingUpdate
	} else {
		d.status = StatusPendingReview
	}
	d.submittedAt = &now
	d.touch(now)
	return nil
}

// Approve records the reviewer and moves the draft into publishing. The actual
// remote sync happens asynchronously; see MarkPublished / MarkPublishFailed.
func (d *Draft) Approve(reviewerID uuid.UUID, now time.Time) error {
	if !d.status.AwaitingReview() {
		return ErrInvalidTransition
	}
	d.status = StatusPublishing
	d.reviewedBy = &reviewerID
	d.reviewedAt = &now
	d.reviewNotes = nil
	d.touch(now)
	return nil
}

// Reject closes the review round with a terminal verdict. The reason is kept
// on the draft so the trainer sees why.
func (d *Draft) Reject(reviewerID uuid.UUID, reason string, now time.Time) error {
	if !d.status.AwaitingReview() {
		return ErrInvalidTransition
	}
	d.status = StatusRejected
	d.reviewedBy = &reviewerID
	d.reviewedAt = &now
	d.reviewNotes = &reason
	d.touch(now)
	return nil
}

// RequestChanges returns the draft to the trainer with notes, without the
// terminal weight of a rejection.
func (d *Draft) RequestChanges(reviewerID uuid.UUID, notes string, now time.Time) error {
	if !d.status.AwaitingReview() {
		return ErrInvalidTransition
	}
	d.status = StatusDraft
	d.reviewedBy = &reviewerID
	d.reviewedAt = &now
	d.reviewNotes = &notes
	d.touch(now)
	return nil
}

// MarkPublished completes a sync round. Remote refs are written once on first
// publish and must match on every later round. A successful round clears the
// published snapshot so the draft carries no stale diff state.
func (d *Draft) MarkPublished(remoteProductRef, remoteVariantRef int64, now time.Time) error {
	if d.status != StatusPublishing {
		return ErrInvalidTransition
	}
	if d.remoteProductRef != nil && (*d.remoteProductRef != remoteProductRef || *d.remoteVariantRef != remoteVariantRef) {
		return ErrRemoteRefImmutable
	}
	d.remoteProductRef = &remoteProductRef
	d.remoteVariantRef = &remoteVariantRef
	d.status = StatusPublished
	d.publishedSnapshot = nil
	d.touch(now)
	return nil
}

// MarkPublishFailed records a failed sync attempt. The snapshot, when present,
// is retained: it still describes what the remote listing shows.
func (d *Draft) MarkPublishFailed(now time.Time) error {
	if d.status != StatusPublishing {
		return ErrInvalidTransition
	}
	d.status = StatusFailed
	d.touch(now)
	return nil
}

// ApplyEdit replaces the draft content. Editing a published bundle freezes the
// current content into the published snapshot and moves the draft to
// pending_update; the snapshot is captured once per update round.
func (d *Draft) ApplyEdit(content Content, now time.Time) error {
	if err := content.Validate(); err != nil {
		return err
	}
	switch d.status {
	case StatusPublishing:
		return ErrEditWhilePublishing
	case StatusPublished:
		d.freezeSnapshot(now)
		d.status = StatusPendingUpdate
	case StatusDraft, StatusRejected, StatusFailed, StatusPendingReview, StatusPendingUpdate:
	default:
		return ErrInvalidTransition
	}
	d.content = content
	d.touch(now)
	return nil
}

// SetQuantity is the component-editor path: mutate one line item by remote
// ref. Like every component edit it lands the draft in pending_update. A
// failed mutation leaves the draft untouched, status included.
func (d *Draft) SetQuantity(remoteRef int64, qty int32, now time.Time) error {
	if !d.componentEditable() {
		return ErrNotPublished
	}
	products := d.content.Products.clone()
	if err := products.SetQuantity(remoteRef, qty); err != nil {
		return err
	}
	d.commitComponentEdit(products, now)
	return nil
}

// AddComponent appends a product line item, merging by summing quantities when
// the remote ref is already present.
func (d *Draft) AddComponent(item ProductItem, now time.Time) error {
	if !d.componentEditable() {
		return ErrNotPublished
	}
	products, err := d.content.Products.clone().Add(item)
	if err != nil {
		return err
	}
	d.commitComponentEdit(products, now)
	return nil
}

func (d *Draft) RemoveComponent(remoteRef int64, now time.Time) error {
	if !d.componentEditable() {
		return ErrNotPublished
	}
	products, err := d.content.Products.clone().Remove(remoteRef)
	if err != nil {
		return err
	}
	d.commitComponentEdit(products, now)
	return nil
}

func (d *Draft) componentEditable() bool {
	return d.status == StatusPublished || d.status == StatusPendingUpdate
}

func (d *Draft) commitComponentEdit(products ProductList, now time.Time) {
	if d.status == StatusPublished {
		d.freezeSnapshot(now)
		d.status = StatusPendingUpdate
	}
	d.content.Products = products
	d.touch(now)
}

func (d *Draft) freezeSnapshot(now time.Time) {
	snap := Snapshot{
		Title:       d.content.Title,
		Description: d.content.Description,
		Price:       d.content.Price,
		Cadence:     d.content.Cadence,
		Products:    d.content.Products.clone(),
		Services:    cloneServices(d.content.Services),
		Goals:       cloneGoals(d.content.Goals),
		ImageURL:    d.content.ImageURL,
		CapturedAt:  now,
	}
	d.publishedSnapshot = &snap
}

func (d *Draft) touch(now time.Time) {
	d.updatedAt = now
}
