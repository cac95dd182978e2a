package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// UpdateProfileInput always targets the caller; there is no way to edit
// someone else's profile.
type UpdateProfileInput struct {
	UserID            string
	Designation       string
	YearsOfExperience int
}

type UpdateProfileUseCase struct {
	Users repository.UserRepository
}

func NewUpdateProfileUseCase(users repository.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{Users: users}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, in UpdateProfileInput) (*repository.User, error) {
	designation := strings.TrimSpace(in.Designation)
	if designation == "" {
		return nil, account.MissingField("designation")
	}
	if in.YearsOfExperience < 0 {
		return nil, account.ErrInvalidExperience
	}
	u, err := uc.Users.UpdateProfile(ctx, in.UserID, designation, in.YearsOfExperience)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, account.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", account.ErrLoadFailed, err)
	}
	return u, nil
}
