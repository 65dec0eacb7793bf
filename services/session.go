package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionDuration is the fixed expiry window for a login session.
const SessionDuration = 2 * time.Hour

// SessionClaims is the identity carried by the session cookie.
type SessionClaims struct {
	UserID    uint
	SessionID string
}

// NewSessionToken mints a signed session token for userID. Each login gets
// a fresh session id, so anti-forgery tokens from older sessions stop
// verifying.
func NewSessionToken(userID uint, secret string) (string, SessionClaims, error) {
	sid := uuid.NewString()
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"jti": sid,
		"iat": now.Unix(),
		"exp": now.Add(SessionDuration).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", SessionClaims{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, SessionClaims{UserID: userID, SessionID: sid}, nil
}

// ParseSessionToken verifies the signature and expiry of a session token
// and returns its claims.
func ParseSessionToken(tokenString, secret string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return SessionClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, fmt.Errorf("invalid token claims")
	}

	// JWT numbers decode as float64
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return SessionClaims{}, fmt.Errorf("invalid user ID in token")
	}
	sid, ok := claims["jti"].(string)
	if !ok || sid == "" {
		return SessionClaims{}, fmt.Errorf("missing session ID in token")
	}

	return SessionClaims{UserID: uint(sub), SessionID: sid}, nil
}

// CSRFToken derives the anti-forgery token bound to a session.
func CSRFToken(sessionID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyCSRFToken reports whether token matches the session's expected
// anti-forgery token. The comparison is constant time.
func VerifyCSRFToken(token, sessionID, secret string) bool {
	expected := CSRFToken(sessionID, secret)
	return hmac.Equal([]byte(token), []byte(expected))
}
