package repository

import (
	"errors"
	"testing"

	"github.com/SketchShifter/sample_app_backend/internal/mock"

	"gorm.io/gorm"
)

func TestMicropostRepositoryListByUser(t *testing.T) {
	db := mock.NewDB(t)
	users := mock.CreateUsers(t, db)
	first := mock.CreateMicropost(t, db, users[0].ID, "first")
	mock.CreateMicropost(t, db, users[1].ID, "other")
	second := mock.CreateMicropost(t, db, users[0].ID, "second")

	repo := NewMicropostRepository(db)
	posts, err := repo.ListByUser(users[0].ID)
	if err != nil {
		t.Fatalf("投稿一覧の取得に失敗しました: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != first.ID || posts[1].ID != second.ID {
		t.Errorf("posts = %+v, want [first, second]", posts)
	}

	if n, _ := repo.CountByUser(users[0].ID); n != 2 {
		t.Errorf("CountByUser = %d, want 2", n)
	}
}

func TestMicropostRepositoryDelete(t *testing.T) {
	db := mock.NewDB(t)
	users := mock.CreateUsers(t, db)
	post := mock.CreateMicropost(t, db, users[0].ID, "bye")

	repo := NewMicropostRepository(db)
	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("投稿の削除に失敗しました: %v", err)
	}
	if _, err := repo.FindByID(post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
	if err := repo.Delete(post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}
