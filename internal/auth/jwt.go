package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/logging"
)

var (
	ErrInvalidToken = apperror.New(apperror.ErrUnauthorized, "invalid token")
	ErrExpiredToken = apperror.New(apperror.ErrUnauthorized, "token has expired")
	ErrMissingToken = apperror.New(apperror.ErrUnauthorized, "missing token")
)

const (
	ctxUserID      = logging.FieldUserID
	ctxDisplayName = "display_name"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	UserID      string `json:"sub"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// Authenticator handles JWT generation and validation.
type Authenticator struct {
	secretKey []byte
	issuer    string
	validity  time.Duration
	now       func() time.Time
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(secretKey string, issuer string, validity time.Duration) *Authenticator {
	return &Authenticator{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		validity:  validity,
		now:       time.Now,
	}
}

// Validity is the lifetime of issued tokens.
func (a *Authenticator) Validity() time.Duration { return a.validity }

// GenerateToken creates a signed JWT for a user.
func (a *Authenticator) GenerateToken(userID, displayName string) (string, error) {
	now := a.now()
	claims := Claims{
		UserID:      userID,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    a.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secretKey)
}

// ValidateToken parses and validates a JWT string.
func (a *Authenticator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secretKey, nil
	}, jwt.WithIssuer(a.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity on the gin context. Websocket clients may pass the token
// as the "token" query parameter since browsers cannot set headers there.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			apperror.Respond(c, ErrMissingToken)
			c.Abort()
			return
		}
		claims, err := a.ValidateToken(raw)
		if err != nil {
			apperror.Respond(c, err)
			c.Abort()
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxDisplayName, claims.DisplayName)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string { return c.GetString(ctxUserID) }

// DisplayName returns the display name embedded in the caller's token.
func DisplayName(c *gin.Context) string { return c.GetString(ctxDisplayName) }

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}

// DeviceHeader names the header identifying the caller's device. Browser
// websockets pass it as the "device_id" query parameter instead.
const DeviceHeader = "X-Device-ID"

// DeviceID returns the caller's device id, or "" when none was sent.
func DeviceID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(DeviceHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("device_id"))
}
