// Package auth resolves the Supabase user behind a bearer token.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
)

// ErrInvalidToken is returned for tokens that do not identify a user.
var ErrInvalidToken = errors.New("invalid or expired token")

// supabaseAudience is the aud claim GoTrue puts on signed-in users' tokens.
const supabaseAudience = "authenticated"

// SupabaseVerifier asks GoTrue who owns the token.
type SupabaseVerifier struct {
	client *supa.Client
}

// NewSupabaseVerifier wraps an initialized Supabase client.
func NewSupabaseVerifier(client *supa.Client) *SupabaseVerifier {
	return &SupabaseVerifier{client: client}
}

// VerifyToken returns the user id for token.
func (v *SupabaseVerifier) VerifyToken(token string) (string, error) {
	user, err := v.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if user == nil || user.ID == uuid.Nil {
		return "", ErrInvalidToken
	}
	return user.ID.String(), nil
}

// JWTVerifier checks Supabase access tokens locally against the project's
// JWT secret, avoiding a GoTrue round trip per request.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a verifier for HS256 tokens signed with secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// VerifyToken validates signature, expiry and audience and returns the subject.
func (v *JWTVerifier) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithAudience(supabaseAudience), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return "", ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}
	return userID.String(), nil
}
