// Package auth provides JWT issuance and password hashing.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"klevant/internal/application/user/usecases"
	sharedconfig "klevant/internal/shared/config"
)

type tokenKind string

const (
	kindAccess  tokenKind = "access"
	kindRefresh tokenKind = "refresh"
)

// Claims is the JWT payload. SessionID ties the access and refresh tokens
// of one login together.
type Claims struct {
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role"`
	Kind      tokenKind `json:"kind"`
	SessionID string    `json:"session_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTService(cfg *sharedconfig.AuthConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  time.Duration(cfg.AccessExpMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshExpDays) * 24 * time.Hour,
	}
}

// GeneratePair issues a fresh access/refresh pair sharing one session ID.
func (s *JWTService) GeneratePair(userID uint, role string) (*usecases.TokenPair, error) {
	sessionID := uuid.NewString()

	access, err := s.sign(userID, role, kindAccess, sessionID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, role, kindRefresh, sessionID, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &usecases.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RefreshPair validates a refresh token and issues a new pair.
func (s *JWTService) RefreshPair(refreshToken string) (*usecases.TokenPair, error) {
	claims, err := s.Validate(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Kind != kindRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}
	return s.GeneratePair(claims.UserID, claims.Role)
}

// Validate parses the token and returns its claims when valid.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ValidateAccess rejects refresh tokens presented as access tokens.
func (s *JWTService) ValidateAccess(tokenString string) (*Claims, error) {
	claims, err := s.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Kind != kindAccess {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

func (s *JWTService) sign(userID uint, role string, kind tokenKind, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		Kind:      kind,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
