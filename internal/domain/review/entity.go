package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidVerdict = errors.New("invalid review verdict")
	ErrEmptyReason    = errors.New("rejection requires a non-empty reason")
)

// Verdict closes a review round. Exactly one verdict per round.
type Verdict string

const (
	VerdictApproved         Verdict = "approved"
	VerdictRejected         Verdict = "rejected"
	VerdictChangesRequested Verdict = "changes_requested"
)

func (v Verdict) IsValid() bool {
	switch v {
	case VerdictApproved, VerdictRejected, VerdictChangesRequested:
		return true
	default:
		return false
	}
}

func (v Verdict) String() string {
	return string(v)
}

// Decision is one append-only entry in a bundle's review history.
type Decision struct {
	id         uuid.UUID
	draftID    uuid.UUID
	reviewerID uuid.UUID
	verdict    Verdict
	notes      string
	decidedAt  time.Time
}

func NewDecision(draftID, reviewerID uuid.UUID, verdict Verdict, notes string, now time.Time) (*Decision, error) {
	if !verdict.IsValid() {
		return nil, ErrInvalidVerdict
	}
	if verdict == VerdictRejected && strings.TrimSpace(notes) == "" {
		return nil, ErrEmptyReason
	}
	return &Decision{
		id:         uuid.New(),
		draftID:    draftID,
		reviewerID: reviewerID,
		verdict:    verdict,
		notes:      notes,
		decidedAt:  now,
	}, nil
}

func ReconstructDecision(id, draftID, reviewerID uuid.UUID, verdict Verdict, notes string, decidedAt time.Time) *Decision {
	return &Decision{
		id:         id,
		draftID:    draftID,
		reviewerID: reviewerID,
		verdict:    verdict,
		notes:      notes,
		decidedAt:  decidedAt,
	}
}

func (d *Decision) ID() uuid.UUID         { return d.id }
func (d *Decision) DraftID() uuid.UUID    { return d.draftID }
func (d *Decision) ReviewerID() uuid.UUID { return d.reviewerID }
func (d *Decision) Verdict() Verdict      { return d.verdict }
func (d *Decision) Notes() string         { return d.notes }
func (d *Decision) DecidedAt() time.Time  { return d.decidedAt }
