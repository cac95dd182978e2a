package usecase

import "context"

// LogoutUseCase forgets the display name remembered on a device. Tokens are
// stateless and simply expire.
type LogoutUseCase struct {
	Devices DeviceCache
}

func NewLogoutUseCase(devices DeviceCache) *LogoutUseCase {
	return &LogoutUseCase{Devices: devices}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, deviceID string) error {
	return uc.Devices.ClearDisplayName(ctx, deviceID)
}
