package usecase

import "context"

// DeviceCache is the per-device display name the client remembers between
// visits.
type DeviceCache interface {
	DisplayName(ctx context.Context, deviceID string) (string, bool, error)
	SetDisplayName(ctx context.Context, deviceID, name string) error
	ClearDisplayName(ctx context.Context, deviceID string) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	GenerateToken(userID, displayName string) (string, error)
}
