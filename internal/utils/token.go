package utils

import (
	cboard "cboard/errors"
	"cboard/models"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	AccountID int64  `json:"id"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) Identity() *models.AccountInfo {
	return &models.AccountInfo{ID: c.AccountID, Nickname: c.Nickname, Email: c.Email}
}

// TokenManager issues and verifies HS256 session tokens.
type TokenManager struct {
	key    []byte
	issuer string
	expire time.Duration
}

func NewTokenManager(secret, issuer string, expire time.Duration) *TokenManager {
	return &TokenManager{key: []byte(secret), issuer: issuer, expire: expire}
}

func (m *TokenManager) GenToken(info *models.AccountInfo) (string, *SessionClaims, error) {
	now := time.Now()
	claims := &SessionClaims{
		AccountID: info.ID,
		Nickname:  info.Nickname,
		Email:     info.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(info.ID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", nil, errors.Wrap(cboard.ErrGenToken, err.Error())
	}
	return token, claims, nil
}

func (m *TokenManager) ParseToken(tokenStr string) (*SessionClaims, error) {
	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, cboard.ErrExpiredToken
		}
		return nil, errors.Wrap(cboard.ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.AccountID == 0 {
		return nil, cboard.ErrInvalidToken
	}
	return claims, nil
}

func (m *TokenManager) Expire() time.Duration {
	return m.expire
}
