package readstore

import (
	"context"

	"trainhub/internal/infra"
	"trainhub/internal/infra/db"
	"trainhub/internal/pkg/pgconv"
	"trainhub/internal/usecase/queries"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDSQL = `
SELECT id, email, role, display_name, is_active, last_login_at
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view        queries.AuthorizedUserView
		lastLoginAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.DisplayName, &view.IsActive, &lastLoginAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	view.LastLoginAt = pgconv.TimePtrFromPgtype(lastLoginAt)
	return &view, nil
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, display_name, is_active
FROM users
WHERE email = $1`

// FindSnapshotByEmail is the credential read used by login. It is the only
// query that surfaces the password hash.
func (r *UserReadStore) FindSnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	var snapshot shared.UserSnapshot
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&snapshot.ID, &snapshot.Email, &snapshot.PasswordHash,
		&snapshot.Role, &snapshot.DisplayName, &snapshot.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snapshot, nil
}
