package shared

import (
	"context"
	"time"

	"trainhub/internal/domain/bundle"
	"trainhub/internal/domain/publication"
	"trainhub/internal/domain/review"
	"trainhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Drafts() DraftRepository
	Publications() PublicationRepository
	Reviews() ReviewRepository
	PublishJobs() PublishJobRepository
	Activity() ActivityRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	DraftStatus(ctx context.Context, id uuid.UUID) (*DraftStatusSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// DraftStatusSnapshot is the minimal read commands use for guard checks before
// opening a transaction.
type DraftStatusSnapshot struct {
	ID        uuid.UUID
	TrainerID uuid.UUID
	Status    bundle.Status
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	DisplayName  string
	IsActive     bool
}

type DraftRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, draft *bundle.Draft) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, draft *bundle.Draft) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*bundle.Draft, error)
}

type PublicationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, pub *publication.Publication) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, pub *publication.Publication) error
	FindActiveByDraftID(ctx context.Context, dbtx db.DBTX, draftID uuid.UUID) (*publication.Publication, error)
}

type ReviewRepository interface {
	Append(ctx context.Context, dbtx db.DBTX, decision *review.Decision) error
}

// PublishJob is one queued sync round for a draft.
type PublishJob struct {
	ID       uuid.UUID
	DraftID  uuid.UUID
	Attempts int32
	RunAt    time.Time
}

type PublishJobRepository interface {
	Enqueue(ctx context.Context, dbtx db.DBTX, draftID uuid.UUID, runAt time.Time) error
	// ClaimNext picks one due job with FOR UPDATE SKIP LOCKED and marks it
	// processing. Returns nil when the queue is empty.
	ClaimNext(ctx context.Context, dbtx db.DBTX, now time.Time) (*PublishJob, error)
	MarkDone(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reason string) error
}

// ActivityEntry is one fire-and-forget audit record.
type ActivityEntry struct {
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Detail     map[string]any
}

type ActivityRepository interface {
	Append(ctx context.Context, dbtx db.DBTX, entry ActivityEntry) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
