package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// ResolveIdentityInput names the device and, optionally, the display name to
// look up. An empty DisplayName falls back to the one cached on the device.
type ResolveIdentityInput struct {
	DeviceID    string
	DisplayName string
}

type ResolveIdentityResult struct {
	User repository.User
	// Resynced is set when the device cache was rewritten with the
	// canonical display name.
	Resynced bool
}

// ResolveIdentityUseCase maps a remembered display name to the durable user
// record. Each call is a single attempt.
type ResolveIdentityUseCase struct {
	Users   repository.UserRepository
	Devices DeviceCache
}

func NewResolveIdentityUseCase(users repository.UserRepository, devices DeviceCache) *ResolveIdentityUseCase {
	return &ResolveIdentityUseCase{Users: users, Devices: devices}
}

// Execute returns exactly one of: the user, account.ErrUserNotFound, or an
// error matching account.ErrLoadFailed.
func (uc *ResolveIdentityUseCase) Execute(ctx context.Context, in ResolveIdentityInput) (*ResolveIdentityResult, error) {
	raw := in.DisplayName
	if strings.TrimSpace(raw) == "" && in.DeviceID != "" {
		cached, _, err := uc.Devices.DisplayName(ctx, in.DeviceID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", account.ErrLoadFailed, err)
		}
		raw = cached
	}
	name := strings.TrimSpace(raw)
	if name == "" {
		return nil, account.ErrNoIdentity
	}

	u, err := uc.Users.FindByDisplayName(ctx, name)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, account.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", account.ErrLoadFailed, err)
	}

	res := &ResolveIdentityResult{User: *u}
	if in.DeviceID != "" && raw != u.DisplayName {
		if err := uc.Devices.SetDisplayName(ctx, in.DeviceID, u.DisplayName); err == nil {
			res.Resynced = true
		}
	}
	return res, nil
}
