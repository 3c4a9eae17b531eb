package commands

import (
	"context"
	"log/slog"

	"trainhub/internal/domain/user"
	"trainhub/internal/pkg/errs"
	"trainhub/internal/pkg/jwt"
	"trainhub/internal/pkg/password"
	"trainhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	DisplayName string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	snapshot, err := a.validateUser(ctx, email, plainPassword)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(snapshot.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snapshot.ID)
	})
	if err != nil {
		// Login already succeeded, only the last_login touch failed.
		slog.Warn("failed to update last login", "user_id", snapshot.ID.String(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      snapshot.ID,
		Role:        role,
		DisplayName: snapshot.DisplayName,
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, plainPassword string) (*shared.UserSnapshot, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	cred, err := user.NewCredential(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snapshot, err := a.uow.CommandReads().UserByEmail(ctx, addr.Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}
	if snapshot == nil {
		return nil, ErrUserNotFound
	}
	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.Verify(snapshot.PasswordHash, cred.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return snapshot, nil
}
