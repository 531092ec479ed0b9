package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"washex/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "washex-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given staff member.
// The token expires after the specified duration.
func GenerateToken(staffID, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   staffID,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// VerifyToken parses and validates a JWT, returning the staff ID and role.
func VerifyToken(tokenStr string) (staffID, role string, err error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	r, _ := claims["role"].(string)
	if sub == "" {
		return "", "", errors.New("token missing subject")
	}
	return sub, r, nil
}

// HashToken computes a SHA-256 hash of the token string. Only hashes
// are stored in the session cache.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
