package auth

import (
	"errors"
	"fmt"
	"time"

	"go_course_craft/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager は署名付きBearerトークンの発行と検証の抽象。
// 署名キーは生成時に注入する (テストごとに別キーを使えるようにするため)。
type TokenManager interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(tokenString string) (uuid.UUID, error)
}

type jwtTokenManager struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
}

// NewJWTTokenManager は HS256 で署名するJWTベースの TokenManager を生成します
func NewJWTTokenManager(secretKey string, ttl time.Duration, issuer string) TokenManager {
	return &jwtTokenManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		issuer:    issuer,
	}
}

// Issue はユーザーIDをsubjectに持つトークンを発行します (有効期限は発行からttl)
func (m *jwtTokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("jwtTokenManager.Issue: %w", err)
	}
	return signed, nil
}

// Verify は署名・形式・有効期限を検証し、subjectのユーザーIDを返します。
// issuer/audience は検証しない (このシステムに必要な最小限の契約)。
func (m *jwtTokenManager) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムが期待通り(HMAC)かチェック
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, model.ErrUnauthorized
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, model.ErrUnauthorized
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, model.ErrUnauthorized
	}

	return userID, nil
}
