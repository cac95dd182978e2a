package usecase

import (
	"context"
	"errors"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	cache "github.com/Shreya020904/Planner-ui/internal/infrastructure/cache/port"
	shell "github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/domain"
)

const (
	keyTheme       = "theme"
	keyDisplayName = "display_name"
)

// Preferences is the per-device key/value store the client keeps between
// sessions. Values never expire.
type Preferences struct {
	cache cache.Cache
}

func NewPreferences(c cache.Cache) *Preferences {
	return &Preferences{cache: c}
}

func prefKey(deviceID, name string) string { return "prefs:" + deviceID + ":" + name }

func (p *Preferences) Theme(ctx context.Context, deviceID string) (shell.Theme, error) {
	v, err := p.get(ctx, deviceID, keyTheme)
	if err != nil {
		return shell.ThemeLight, err
	}
	return shell.ParseTheme(v), nil
}

func (p *Preferences) SetTheme(ctx context.Context, deviceID string, t shell.Theme) error {
	return p.set(ctx, deviceID, keyTheme, string(t))
}

// DisplayName returns the display name cached on the device, if any.
func (p *Preferences) DisplayName(ctx context.Context, deviceID string) (string, bool, error) {
	v, err := p.get(ctx, deviceID, keyDisplayName)
	if err != nil {
		return "", false, err
	}
	return v, v != "", nil
}

func (p *Preferences) SetDisplayName(ctx context.Context, deviceID, name string) error {
	return p.set(ctx, deviceID, keyDisplayName, name)
}

func (p *Preferences) ClearDisplayName(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return nil
	}
	if _, err := p.cache.Del(ctx, prefKey(deviceID, keyDisplayName)); err != nil {
		return apperror.Wrap(apperror.ErrUnavailable, "failed to clear device preferences", err)
	}
	return nil
}

func (p *Preferences) get(ctx context.Context, deviceID, name string) (string, error) {
	if deviceID == "" {
		return "", nil
	}
	v, err := p.cache.Get(ctx, prefKey(deviceID, name))
	if errors.Is(err, cache.ErrMiss) {
		return "", nil
	}
	if err != nil {
		return "", apperror.Wrap(apperror.ErrUnavailable, "failed to read device preferences", err)
	}
	return v, nil
}

func (p *Preferences) set(ctx context.Context, deviceID, name, value string) error {
	if deviceID == "" {
		return apperror.New(apperror.ErrValidation, "device id is required")
	}
	if err := p.cache.Set(ctx, prefKey(deviceID, name), value, 0); err != nil {
		return apperror.Wrap(apperror.ErrUnavailable, "failed to save device preferences", err)
	}
	return nil
}
