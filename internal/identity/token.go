package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/adapter"
)

// accessClaims are the claims GoTrue puts into access tokens
type accessClaims struct {
	jwt.RegisteredClaims
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

// tokenVerifier validates HS256 access tokens signed with the provider's JWT secret
type tokenVerifier struct {
	secret []byte
	clock  adapter.Clock
}

func newTokenVerifier(secret string, clock adapter.Clock) *tokenVerifier {
	return &tokenVerifier{secret: []byte(secret), clock: clock}
}

// verify parses and validates the token and returns the user it was issued to
func (v *tokenVerifier) verify(tokenString string) (*User, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithTimeFunc(v.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	// Anonymous and service tokens carry no user
	if claims.Role != "" && claims.Role != "authenticated" {
		return nil, fmt.Errorf("unexpected token role: %s", claims.Role)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	return &User{
		ID:             id,
		Email:          claims.Email,
		EmailConfirmed: true,
		UserMetadata:   claims.UserMetadata,
	}, nil
}
