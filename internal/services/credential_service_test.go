package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptCredentialService(t *testing.T) {
	s := NewBcryptCredentialService(bcrypt.MinCost)

	digest, err := s.Hash("secret1")
	if err != nil {
		t.Fatalf("ハッシュ化に失敗しました: %v", err)
	}
	if digest == "secret1" {
		t.Fatal("パスワードが平文のまま保存されています")
	}
	if !s.Verify(digest, "secret1") {
		t.Error("正しいパスワードが一致しませんでした")
	}
	if s.Verify(digest, "secret2") {
		t.Error("誤ったパスワードが一致しました")
	}
	if s.Verify("not-a-digest", "secret1") {
		t.Error("不正なハッシュで一致しました")
	}
}

func TestBcryptCredentialServiceFallsBackToDefaultCost(t *testing.T) {
	s := NewBcryptCredentialService(100).(*bcryptCredentialService)
	if s.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", s.cost, bcrypt.DefaultCost)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	verr := NewValidationError(nil)
	if !verr.Empty() {
		t.Fatal("新しい ValidationError は空のはずです")
	}
	verr.Add("name", "必須です")
	verr.Add("email", "すでに使用されています")

	want := "入力内容に誤りがあります: email: すでに使用されています; name: 必須です"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
