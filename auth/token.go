// Package auth issues and verifies the HS256 bearer tokens that identify the
// calling user.
package auth

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrNoSubject    = errors.New("token carries no user id")
)

// Claims accepts both the nested {"user":{"id":...}} form issued by the
// legacy auth service and a plain "sub".
type Claims struct {
	User *UserClaim `json:"user,omitempty"`
	jwtlib.RegisteredClaims
}

type UserClaim struct {
	ID string `json:"id"`
}

// UserID prefers user.id over sub.
func (c Claims) UserID() string {
	if c.User != nil && c.User.ID != "" {
		return c.User.ID
	}
	return c.Subject
}

type HMACService struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewHMACService(secret string, expiresIn time.Duration) *HMACService {
	return &HMACService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

// Issue signs a token for userID carrying both claim forms.
func (s *HMACService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", ErrNoSubject
	}
	now := s.now()
	claims := Claims{
		User: &UserClaim{ID: userID},
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn)),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the user id.
func (s *HMACService) Verify(tokenString string) (string, error) {
	var claims Claims
	_, err := jwtlib.ParseWithClaims(tokenString, &claims, func(t *jwtlib.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	userID := claims.UserID()
	if userID == "" {
		return "", ErrNoSubject
	}
	return userID, nil
}
