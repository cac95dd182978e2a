package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

type SignupInput struct {
	DisplayName       string
	Email             string
	Password          string
	ConfirmPassword   string
	Designation       string
	YearsOfExperience int
}

type SignupUseCase struct {
	Users repository.UserRepository
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
}

func NewSignupUseCase(users repository.UserRepository) *SignupUseCase {
	return &SignupUseCase{Users: users}
}

// Execute validates the form, hashes the password and stores a new user.
// All validation happens before the store is touched.
func (uc *SignupUseCase) Execute(ctx context.Context, in SignupInput) (*repository.User, error) {
	if err := validateSignup(&in); err != nil {
		return nil, err
	}

	cost := uc.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &repository.User{
		ID:                uuid.NewString(),
		DisplayName:       in.DisplayName,
		Email:             in.Email,
		Designation:       in.Designation,
		YearsOfExperience: in.YearsOfExperience,
		PasswordHash:      string(hash),
	}
	if err := uc.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateDisplayName) {
			return nil, account.ErrDuplicateDisplayName
		}
		return nil, fmt.Errorf("%w: %w", account.ErrLoadFailed, err)
	}
	return u, nil
}

func validateSignup(in *SignupInput) error {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Email = strings.TrimSpace(in.Email)
	in.Designation = strings.TrimSpace(in.Designation)

	switch {
	case in.DisplayName == "":
		return account.MissingField("username")
	case in.Email == "":
		return account.MissingField("email")
	case in.Password == "":
		return account.MissingField("password")
	case in.Designation == "":
		return account.MissingField("designation")
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return account.ErrInvalidEmail
	}
	if len(in.Password) < account.MinPasswordLength {
		return account.ErrWeakPassword
	}
	if in.Password != in.ConfirmPassword {
		return account.ErrPasswordMismatch
	}
	if in.YearsOfExperience < 0 {
		return account.ErrInvalidExperience
	}
	return nil
}
