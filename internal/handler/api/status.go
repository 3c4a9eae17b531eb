package api

import (
	"net/http"

	"trainhub/internal/pkg/errs"
	"trainhub/internal/usecase/commands"
	"trainhub/internal/usecase/queries"
)

// statusOf maps command and query sentinels to HTTP statuses. Anything
// unrecognized is a 500; the error middleware keeps the original for the log.
func statusOf(err error) int {
	switch {
	case errs.Is(err, commands.ErrBundleNotFound),
		errs.Is(err, commands.ErrComponentNotFound),
		errs.Is(err, queries.ErrBundleNotFound),
		errs.Is(err, queries.ErrPublicationNotFound),
		errs.Is(err, queries.ErrUserNotFound):
		return http.StatusNotFound
	case errs.Is(err, commands.ErrDraftNotOwned),
		errs.Is(err, commands.ErrNotAuthorized),
		errs.Is(err, queries.ErrBundleAccess):
		return http.StatusForbidden
	case errs.Is(err, commands.ErrReviewAlreadyOpen),
		errs.Is(err, commands.ErrInvalidState),
		errs.Is(err, commands.ErrBundleNotPublished):
		return http.StatusConflict
	case errs.Is(err, commands.ErrDomainValidation),
		errs.Is(err, commands.ErrEmptyReason),
		errs.Is(err, queries.ErrInvalidCursor):
		return http.StatusBadRequest
	case errs.Is(err, commands.ErrInvalidCredentials),
		errs.Is(err, commands.ErrUserNotFound),
		errs.Is(err, commands.ErrUserInactive):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
