package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateURLSafeToken n バイトの乱数を URL セーフな base64 (パディングなし) で返す
func GenerateURLSafeToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("トークンのバイト数が不正です: %d", n)
	}
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("乱数の生成に失敗しました: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
