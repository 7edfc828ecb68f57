package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/model"
)

// Claims represents the JWT payload. The user id travels in the "id" claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// JWT implements TokenManager backed by symmetric HMAC-SHA256.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: []byte(secretKey), ttl: ttl}
}

// Generate creates a signed access token for userID.
func (j *JWT) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID.String(),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse verifies the signature and expiry of tokenString and returns its claims.
// Every failure wraps model.ErrUnauthenticated.
func (j *JWT) Parse(tokenString string) (model.Claims, error) {
	if tokenString == "" {
		return model.Claims{}, fmt.Errorf("%w: empty token", model.ErrUnauthenticated)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return model.Claims{}, fmt.Errorf("%w: %w", model.ErrUnauthenticated, err)
	}
	if !token.Valid {
		return model.Claims{}, fmt.Errorf("%w: token is invalid", model.ErrUnauthenticated)
	}
	if claims.UserID == "" {
		return model.Claims{}, fmt.Errorf("%w: %w", model.ErrUnauthenticated, errMissingID)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.Claims{}, fmt.Errorf("%w: malformed id claim: %w", model.ErrUnauthenticated, err)
	}

	out := model.Claims{UserID: userID}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

var errMissingID = errors.New("missing id claim")
