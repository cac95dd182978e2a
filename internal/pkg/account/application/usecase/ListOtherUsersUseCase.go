package usecase

import (
	"context"
	"fmt"

	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

type ListOtherUsersInput struct {
	CurrentUserID string
}

// ListOtherUsersUseCase returns every user except the caller. The store has
// no inequality query, so all users are fetched and filtered here.
type ListOtherUsersUseCase struct {
	Users repository.UserRepository
}

func NewListOtherUsersUseCase(users repository.UserRepository) *ListOtherUsersUseCase {
	return &ListOtherUsersUseCase{Users: users}
}

func (uc *ListOtherUsersUseCase) Execute(ctx context.Context, in ListOtherUsersInput) ([]repository.User, error) {
	users, err := uc.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", account.ErrLoadOthersFailed, err)
	}
	others := make([]repository.User, 0, len(users))
	for _, u := range users {
		if u.ID != in.CurrentUserID {
			others = append(others, u)
		}
	}
	return others, nil
}
