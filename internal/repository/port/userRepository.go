package repository

import (
	"context"
	"time"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
)

var (
	ErrUserNotFound         = apperror.New(apperror.ErrNotFound, "user not found")
	ErrDuplicateDisplayName = apperror.New(apperror.ErrConflict, "username already taken")
)

// User is a registered account. DisplayName is unique across users and is
// what people type to sign in.
type User struct {
	ID                string
	DisplayName       string
	Email             string
	Designation       string
	YearsOfExperience int
	Avatar            string // data URL, empty when unset
	PasswordHash      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserRepository is the persistence contract for users. Lookups that match
// nothing return ErrUserNotFound; any other error is a store failure.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByDisplayName(ctx context.Context, displayName string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id, designation string, yearsOfExperience int) (*User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) error
}
