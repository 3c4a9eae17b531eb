package publication

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidState      = errors.New("invalid publication state")
	ErrInvalidSyncStatus = errors.New("invalid sync status")
	ErrNotSyncing        = errors.New("publication has no sync in flight")
)

// State mirrors where the remote listing stands for this publishing round.
type State string

const (
	StatePublishing State = "publishing"
	StatePublished  State = "published"
	StateFailed     State = "failed"
)

func (s State) IsValid() bool {
	switch s {
	case StatePublishing, StatePublished, StateFailed:
		return true
	default:
		return false
	}
}

// SyncStatus says whether the remote listing currently matches the draft.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)

func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncPending, SyncSynced, SyncFailed:
		return true
	default:
		return false
	}
}

// Publication is the audit record of a draft's remote listing. One record is
// created at the first publish attempt and updated on every sync attempt;
// records are never deleted.
type Publication struct {
	id               uuid.UUID
	draftID          uuid.UUID
	remoteProductRef *int64
	remoteVariantRef *int64
	state            State
	publishedAt      *time.Time
	syncedAt         *time.Time
	syncStatus       SyncStatus
	lastSyncError    *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPublication(draftID uuid.UUID, now time.Time) *Publication {
	return &Publication{
		id:         uuid.New(),
		draftID:    draftID,
		state:      StatePublishing,
		syncStatus: SyncPending,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructPublication(
	id, draftID uuid.UUID,
	remoteProductRef, remoteVariantRef *int64,
	state State,
	publishedAt, syncedAt *time.Time,
	syncStatus SyncStatus,
	lastSyncError *string,
	createdAt, updatedAt time.Time,
) *Publication {
	return &Publication{
		id:               id,
		draftID:          draftID,
		remoteProductRef: remoteProductRef,
		remoteVariantRef: remoteVariantRef,
		state:            state,
		publishedAt:      publishedAt,
		syncedAt:         syncedAt,
		syncStatus:       syncStatus,
		lastSyncError:    lastSyncError,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *Publication) ID() uuid.UUID            { return p.id }
func (p *Publication) DraftID() uuid.UUID       { return p.draftID }
func (p *Publication) RemoteProductRef() *int64 { return p.remoteProductRef }
func (p *Publication) RemoteVariantRef() *int64 { return p.remoteVariantRef }
func (p *Publication) State() State             { return p.state }
func (p *Publication) PublishedAt() *time.Time  { return p.publishedAt }
func (p *Publication) SyncedAt() *time.Time     { return p.syncedAt }
func (p *Publication) SyncStatus() SyncStatus   { return p.syncStatus }
func (p *Publication) LastSyncError() *string   { return p.lastSyncError }
func (p *Publication) CreatedAt() time.Time     { return p.createdAt }
func (p *Publication) UpdatedAt() time.Time     { return p.updatedAt }

// BeginSync marks a new sync attempt for an update round.
func (p *Publication) BeginSync(now time.Time) {
	p.state = StatePublishing
	p.syncStatus = SyncPending
	p.updatedAt = now
}

// MarkSynced completes the round. syncStatus=synced always implies a nil
// lastSyncError; that invariant is enforced here, nowhere else.
func (p *Publication) MarkSynced(remoteProductRef, remoteVariantRef int64, now time.Time) error {
	if p.state != StatePublishing {
		return ErrNotSyncing
	}
	p.remoteProductRef = &remoteProductRef
	p.remoteVariantRef = &remoteVariantRef
	p.state = StatePublished
	p.syncStatus = SyncSynced
	p.lastSyncError = nil
	p.syncedAt = &now
	if p.publishedAt == nil {
		p.publishedAt = &now
	}
	p.updatedAt = now
	return nil
}

// MarkSyncFailed records the failure reason for the attempt. Remote refs from
// an earlier successful round are kept.
func (p *Publication) MarkSyncFailed(reason string, now time.Time) error {
	if p.state != StatePublishing {
		return ErrNotSyncing
	}
	p.state = StateFailed
	p.syncStatus = SyncFailed
	p.lastSyncError = &reason
	p.updatedAt = now
	return nil
}
