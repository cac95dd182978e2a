package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

type LoginInput struct {
	DeviceID    string
	DisplayName string
	Password    string
}

type LoginOutput struct {
	User  repository.User
	Token string
}

// LoginUseCase checks credentials, issues a session token and remembers the
// display name on the device.
type LoginUseCase struct {
	Users   repository.UserRepository
	Devices DeviceCache
	Tokens  TokenIssuer
}

func NewLoginUseCase(users repository.UserRepository, devices DeviceCache, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{Users: users, Devices: devices, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, account.MissingField("username")
	}
	if in.Password == "" {
		return nil, account.MissingField("password")
	}

	u, err := uc.Users.FindByDisplayName(ctx, name)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, account.ErrUnknownUsername
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", account.ErrLoadFailed, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, account.ErrInvalidCredentials
	}

	token, err := uc.Tokens.GenerateToken(u.ID, u.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	if in.DeviceID != "" {
		if err := uc.Devices.SetDisplayName(ctx, in.DeviceID, u.DisplayName); err != nil {
			return nil, err
		}
	}
	return &LoginOutput{User: *u, Token: token}, nil
}
