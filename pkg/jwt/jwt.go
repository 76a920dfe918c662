package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/michaeltheo/placements-backend/config"
)

var (
	ErrTokenExpired = errors.New("το token έχει λήξει")
	ErrTokenInvalid = errors.New("μη έγκυρο token")
)

// Token classes. A session token is the student/admin login credential; a
// capability token is minted only through OTP validation and scopes a company
// to the questionnaire submission endpoint.
const (
	TypeSession    = "session"
	TypeCapability = "capability"
)

// Claims custom JWT claims.
type Claims struct {
	UserID    uint   `json:"sub_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	jwtv5.RegisteredClaims
}

// Manager signs and verifies both token classes.
type Manager struct {
	secret             []byte
	sessionTokenTTL    time.Duration
	capabilityTokenTTL time.Duration
}

// NewManager creates a token Manager.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:             []byte(cfg.JWTSecret),
		sessionTokenTTL:    cfg.SessionTokenTTL,
		capabilityTokenTTL: cfg.CapabilityTokenTTL,
	}
}

// GenerateSessionToken issues the login credential carried by the
// placements_access_token cookie.
func (m *Manager) GenerateSessionToken(userID uint, role string) (string, error) {
	return m.generate(userID, role, TypeSession, m.sessionTokenTTL)
}

// GenerateCapabilityToken issues the short-lived bearer credential a company
// receives after validating an OTP.
func (m *Manager) GenerateCapabilityToken(userID uint) (string, error) {
	return m.generate(userID, "", TypeCapability, m.capabilityTokenTTL)
}

func (m *Manager) generate(userID uint, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "placements-backend",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies a token of either class and returns its claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
