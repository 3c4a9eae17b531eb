package bundle

// Status is the lifecycle state of a trainer-authored bundle draft.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusPublishing    Status = "publishing"
	StatusPublished     Status = "published"
	StatusPendingUpdate Status = "pending_update"
	StatusRejected      Status = "rejected"
	StatusFailed        Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublishing, StatusPublished,
		StatusPendingUpdate, StatusRejected, StatusFailed:
		return true
	default:
		return false
	}
}

// AwaitingReview reports whether the draft has an open review round.
// At most one such round exists per draft at any time.
func (s Status) AwaitingReview() bool {
	return s == StatusPendingReview || s == StatusPendingUpdate
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Cadence is the delivery rhythm a bundle is sold on.
type Cadence string

const (
	CadenceOneTime Cadence = "one_time"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

func (c Cadence) String() string {
	return string(c)
}

func (c Cadence) IsValid() bool {
	switch c {
	case CadenceOneTime, CadenceWeekly, CadenceMonthly:
		return true
	default:
		return false
	}
}

func NewCadence(s string) (Cadence, error) {
	cadence := Cadence(s)
	if !cadence.IsValid() {
		return "", ErrInvalidCadence
	}
	return cadence, nil
}
