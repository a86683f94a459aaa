package utils

import (
	"regexp"
	"testing"
)

var urlSafe = regexp.MustCompile(`\A[A-Za-z0-9_-]+\z`)

func TestGenerateURLSafeToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateURLSafeToken(16)
		if err != nil {
			t.Fatalf("トークン生成に失敗しました: %v", err)
		}
		if len(token) != 22 {
			t.Errorf("len(token) = %d, want 22", len(token))
		}
		if !urlSafe.MatchString(token) {
			t.Errorf("URLセーフでない文字が含まれています: %q", token)
		}
		if seen[token] {
			t.Fatalf("トークンが重複しました: %q", token)
		}
		seen[token] = true
	}
}

func TestGenerateURLSafeTokenRejectsInvalidSize(t *testing.T) {
	if _, err := GenerateURLSafeToken(0); err == nil {
		t.Fatal("0バイトでエラーが返されませんでした")
	}
}
