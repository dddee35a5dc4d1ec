package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher はパスワードのハッシュ化と照合の差し替え可能な抽象
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare はハッシュと平文を照合し、一致しなければエラーを返します。
	// 照合は bcrypt に委ねるため、入力パスワードに対して一定時間で失敗する。
	Compare(hashedPassword, password string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher は bcrypt ベースの PasswordHasher を生成します (コストは10)
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
