package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

const (
	maxAvatarSide  = 800
	maxAvatarBytes = 512 * 1024
	startQuality   = 85
	minQuality     = 35
	qualityStep    = 10
	avatarPrefix   = "data:image/jpeg;base64,"
)

type UpdateAvatarInput struct {
	UserID string
	Image  []byte
}

// UpdateAvatarUseCase compresses an uploaded picture and stores it inline.
// When compression fails the stored avatar is left untouched.
type UpdateAvatarUseCase struct {
	Users repository.UserRepository
}

func NewUpdateAvatarUseCase(users repository.UserRepository) *UpdateAvatarUseCase {
	return &UpdateAvatarUseCase{Users: users}
}

func (uc *UpdateAvatarUseCase) Execute(ctx context.Context, in UpdateAvatarInput) (string, error) {
	dataURL, err := CompressAvatar(in.Image)
	if err != nil {
		return "", err
	}
	if err := uc.Users.UpdateAvatar(ctx, in.UserID, dataURL); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", account.ErrUserNotFound
		}
		return "", fmt.Errorf("%w: %w", account.ErrLoadFailed, err)
	}
	return dataURL, nil
}

// CompressAvatar decodes a JPEG, PNG, GIF or WebP image, fits it within
// 800x800 and re-encodes it as a JPEG data URL no larger than 512 KiB,
// lowering quality as needed.
func CompressAvatar(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", account.ErrMediaProcessing
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", account.ErrMediaProcessing
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return "", account.ErrMediaProcessing
	}
	if w > maxAvatarSide || h > maxAvatarSide {
		if w >= h {
			h = max(1, h*maxAvatarSide/w)
			w = maxAvatarSide
		} else {
			w = max(1, w*maxAvatarSide/h)
			h = maxAvatarSide
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// JPEG has no alpha; flatten onto white.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	for q := startQuality; q >= minQuality; q -= qualityStep {
		buf.Reset()
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: q}); err != nil {
			return "", account.ErrMediaProcessing
		}
		if buf.Len() <= maxAvatarBytes {
			return avatarPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
		}
	}
	return "", account.ErrMediaProcessing
}
