package account

import (
	"github.com/Shreya020904/Planner-ui/internal/apperror"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

var (
	// ErrUserNotFound: no user has the requested display name. Callers must
	// not fabricate a record in its place.
	ErrUserNotFound = repository.ErrUserNotFound
	// ErrLoadFailed: the user store could not be reached. Use cases join it
	// with the underlying cause.
	ErrLoadFailed = apperror.New(apperror.ErrUnavailable, "failed to load user data")
	// ErrLoadOthersFailed is ErrLoadFailed for the other-users listing.
	ErrLoadOthersFailed = apperror.New(apperror.ErrUnavailable, "failed to load other users")

	ErrNoIdentity           = apperror.New(apperror.ErrValidation, "display name is required")
	ErrDuplicateDisplayName = repository.ErrDuplicateDisplayName
	ErrUnknownUsername      = apperror.New(apperror.ErrNotFound, "username not found")
	ErrInvalidCredentials   = apperror.New(apperror.ErrUnauthorized, "incorrect password")
	ErrPasswordMismatch     = apperror.New(apperror.ErrValidation, "passwords do not match")
	ErrWeakPassword         = apperror.New(apperror.ErrValidation, "password must be at least 6 characters")
	ErrInvalidEmail         = apperror.New(apperror.ErrValidation, "email address is invalid")
	ErrInvalidExperience    = apperror.New(apperror.ErrValidation, "years of experience cannot be negative")
	ErrMediaProcessing      = apperror.New(apperror.ErrMedia, "image upload failed, please try a smaller file")
)

// MissingField reports a required signup field left empty.
func MissingField(name string) error {
	return apperror.New(apperror.ErrValidation, name+" is required")
}
