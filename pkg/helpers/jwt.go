package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager handles generation and validation of JWT bearer tokens.
// Registration issues a short-lived token; login issues a session token.
type JWTManager struct {
	Secret      []byte
	RegisterTTL time.Duration
	SessionTTL  time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, registerTTL, sessionTTL time.Duration) *JWTManager {
	m := &JWTManager{
		Secret:      []byte(secret),
		RegisterTTL: registerTTL,
		SessionTTL:  sessionTTL,
	}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

// Claims carries the identity asserted by a bearer token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateRegisterToken issues the short-validity token returned on signup.
func (m *JWTManager) GenerateRegisterToken(userID int64, email, role string) (string, time.Time, error) {
	return m.generate(userID, email, role, m.RegisterTTL)
}

// GenerateSessionToken issues the token returned on login.
func (m *JWTManager) GenerateSessionToken(userID int64, email, role string) (string, time.Time, error) {
	return m.generate(userID, email, role, m.SessionTTL)
}

func (m *JWTManager) generate(userID int64, email, role string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse validates the token signature and expiry and returns its claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
