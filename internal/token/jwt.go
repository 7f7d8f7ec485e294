package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/fostr-server/internal/model"
)

// Claims carries the token type and the numeric user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"uid"`
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

var _ model.TokenManager = (*JWT)(nil)

const (
	// DefaultAccessTTL is the lifetime of access tokens.
	DefaultAccessTTL = 15 * time.Minute
	// DefaultRefreshTTL is the lifetime of refresh tokens.
	DefaultRefreshTTL = 30 * 24 * time.Hour

	issuer      = "fostr"
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// NewJWT creates a token manager signing with secretKey. Non-positive TTLs
// fall back to the defaults.
func NewJWT(secretKey string, accessTTL, refreshTTL time.Duration) *JWT {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &JWT{secretKey: []byte(secretKey), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (j *JWT) sign(userID int64, typ, jti string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		TokenType: typ,
	})
	return token.SignedString(j.secretKey)
}

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(userID int64) (string, error) {
	s, err := j.sign(userID, typeAccess, "", j.accessTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return s, nil
}

// GenerateRefreshToken creates a long-lived refresh token and returns its JTI.
func (j *JWT) GenerateRefreshToken(userID int64) (string, string, error) {
	jti := uuid.NewString()
	s, err := j.sign(userID, typeRefresh, jti, j.refreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return s, jti, nil
}

func (j *JWT) parse(tokenString, typ string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s token: %w", typ, errors.Join(model.ErrTokenInvalid, err))
	}
	if !token.Valid {
		return nil, fmt.Errorf("%s token: %w", typ, model.ErrTokenInvalid)
	}
	if claims.TokenType != typ {
		return nil, fmt.Errorf("token type mismatch %q: %w", claims.TokenType, model.ErrTokenInvalid)
	}
	return claims, nil
}

// ParseAccessToken validates an access token and returns its user ID.
func (j *JWT) ParseAccessToken(tokenString string) (int64, error) {
	claims, err := j.parse(tokenString, typeAccess)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// ParseRefreshToken validates a refresh token and returns its user ID and JTI.
func (j *JWT) ParseRefreshToken(tokenString string) (int64, string, error) {
	claims, err := j.parse(tokenString, typeRefresh)
	if err != nil {
		return 0, "", err
	}
	if claims.ID == "" {
		return 0, "", fmt.Errorf("refresh token without id: %w", model.ErrTokenInvalid)
	}
	return claims.UserID, claims.ID, nil
}
