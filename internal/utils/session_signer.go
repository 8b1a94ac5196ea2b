package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionSigner 签发并校验身份会话 cookie 中的令牌
// 令牌为 HS256 JWT：sub 为十进制用户 ID，iat 为签发时间。
type SessionSigner struct {
	secret []byte
	maxAge time.Duration
	issuer string
	now    func() time.Time
}

func NewSessionSigner(secret string, maxAge time.Duration, issuer string) *SessionSigner {
	return &SessionSigner{
		secret: []byte(secret),
		maxAge: maxAge,
		issuer: issuer,
		now:    time.Now,
	}
}

// WithClock 替换时钟，返回同一个 signer
func (s *SessionSigner) WithClock(now func() time.Time) *SessionSigner {
	s.now = now
	return s
}

// MaxAge 令牌最长有效期，同时用作 cookie 的 max-age
func (s *SessionSigner) MaxAge() time.Duration {
	return s.maxAge
}

func (s *SessionSigner) Issue(userID uint) (string, error) {
	if userID == 0 {
		return "", errors.New("session: user id must be positive")
	}
	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatUint(uint64(userID), 10),
		Issuer:   s.issuer,
		IssuedAt: jwt.NewNumericDate(s.now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return signed, nil
}

// Read 返回令牌中的用户 ID；签名错误、过期、格式错误一律返回 false
func (s *SessionSigner) Read(token string) (uint, bool) {
	if token == "" {
		return 0, false
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithIssuer(s.issuer),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.IssuedAt == nil {
		return 0, false
	}

	if s.now().Sub(claims.IssuedAt.Time) > s.maxAge {
		return 0, false
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 || id > uint64(^uint(0)) {
		return 0, false
	}
	return uint(id), true
}
