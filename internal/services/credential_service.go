package services

import (
	"golang.org/x/crypto/bcrypt"
)

// CredentialService パスワードのハッシュ化と照合を行うインターフェース
type CredentialService interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// bcryptCredentialService CredentialServiceの bcrypt 実装
type bcryptCredentialService struct {
	cost int
}

// NewBcryptCredentialService CredentialServiceを作成
// cost が範囲外の場合は bcrypt.DefaultCost を使う
func NewBcryptCredentialService(cost int) CredentialService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptCredentialService{cost: cost}
}

// Hash パスワードをハッシュ化
func (s *bcryptCredentialService) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify パスワードがハッシュと一致するか
func (s *bcryptCredentialService) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
