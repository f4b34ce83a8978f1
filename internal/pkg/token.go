package pkg

import (
	cryptoRand "crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenParseFailure = errors.New("token parse failure")
)

// NewSessionID 生成 32 位十六进制的不透明 sid
func NewSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := cryptoRand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignSession cookie 里只放签名后的 sid，登录态本身在服务端
func SignSession(secret []byte, sid string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   "session",
		},
	})
	return token.SignedString(secret)
}

// ParseSession 验签并取出 sid
func ParseSession(secret []byte, tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return "", ErrTokenInvalid
		default:
			return "", ErrTokenInvalid
		}
	}
	if !token.Valid {
		return "", ErrTokenParseFailure
	}
	claims := token.Claims.(*sessionClaims)
	if claims.SID == "" {
		return "", ErrTokenInvalid
	}
	return claims.SID, nil
}
