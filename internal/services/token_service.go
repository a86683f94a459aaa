package services

import (
	"github.com/SketchShifter/sample_app_backend/internal/utils"
)

// TokenGenerator remember token を生成するインターフェース
type TokenGenerator interface {
	Generate() (string, error)
}

type rememberTokenGenerator struct {
	size int
}

// NewRememberTokenGenerator size バイトの乱数から URL セーフなトークンを作る TokenGenerator を作成
func NewRememberTokenGenerator(size int) TokenGenerator {
	if size <= 0 {
		size = 16
	}
	return &rememberTokenGenerator{size: size}
}

// Generate 新しいトークンを生成
func (g *rememberTokenGenerator) Generate() (string, error) {
	return utils.GenerateURLSafeToken(g.size)
}
