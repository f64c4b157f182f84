package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed, wrongly signed and claim-less tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when exp is in the past
	ErrExpiredToken = errors.New("token expired")
)

// Claims represents JWT claims structure
type Claims struct {
	AuthorID string `json:"authorId"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret string
	expiry time.Duration
}

// NewManager creates new JWT manager
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: secret, expiry: expiry}
}

// GenerateToken signs an HS256 token carrying the author identity
func (m *Manager) GenerateToken(authorID string) (string, error) {
	now := time.Now()
	claims := Claims{
		AuthorID: authorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses token.
// Verification failures are wrapped in ErrInvalidToken / ErrExpiredToken;
// any other error is returned as is.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		case isVerificationError(err):
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		default:
			return nil, err
		}
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.AuthorID == "" {
		return nil, fmt.Errorf("%w: missing authorId claim", ErrInvalidToken)
	}

	return claims, nil
}

func isVerificationError(err error) bool {
	for _, target := range []error{
		jwt.ErrTokenMalformed,
		jwt.ErrTokenUnverifiable,
		jwt.ErrTokenSignatureInvalid,
		jwt.ErrTokenNotValidYet,
		jwt.ErrTokenUsedBeforeIssued,
		jwt.ErrTokenInvalidClaims,
		jwt.ErrTokenRequiredClaimMissing,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
