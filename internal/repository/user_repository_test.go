package repository

import (
	"errors"
	"testing"

	"github.com/SketchShifter/sample_app_backend/internal/mock"
	"github.com/SketchShifter/sample_app_backend/internal/models"

	"gorm.io/gorm"
)

func TestUserRepositoryFindByEmailIgnoresCase(t *testing.T) {
	db := mock.NewDB(t)
	users := mock.CreateUsers(t, db)
	repo := NewUserRepository(db)

	user, err := repo.FindByEmail("JOHN@Example.COM")
	if err != nil {
		t.Fatalf("ユーザーが見つかりません: %v", err)
	}
	if user.ID != users[0].ID {
		t.Errorf("ID = %d, want %d", user.ID, users[0].ID)
	}

	if _, err := repo.FindByEmail("nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestUserRepositoryFindByRememberToken(t *testing.T) {
	db := mock.NewDB(t)
	users := mock.CreateUsers(t, db)
	repo := NewUserRepository(db)

	user, err := repo.FindByRememberToken(users[1].RememberToken)
	if err != nil {
		t.Fatalf("ユーザーが見つかりません: %v", err)
	}
	if user.ID != users[1].ID {
		t.Errorf("ID = %d, want %d", user.ID, users[1].ID)
	}
}

func TestUserRepositoryEmailTaken(t *testing.T) {
	db := mock.NewDB(t)
	users := mock.CreateUsers(t, db)
	repo := NewUserRepository(db)

	tests := []struct {
		name     string
		email    string
		exceptID uint
		want     bool
	}{
		{name: "other user", email: "Jane@Example.com", want: true},
		{name: "self excluded", email: "jane@example.com", exceptID: users[1].ID, want: false},
		{name: "unused", email: "new@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.EmailTaken(tt.email, tt.exceptID)
			if err != nil {
				t.Fatalf("予期しないエラー: %v", err)
			}
			if got != tt.want {
				t.Errorf("EmailTaken(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	db := mock.NewDB(t)
	mock.CreateUsers(t, db)
	repo := NewUserRepository(db)

	dup := &models.User{Name: "Dup", Email: "john@example.com", PasswordDigest: "x"}
	if err := repo.Create(dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("err = %v, want ErrDuplicatedKey", err)
	}
}

func TestUserRepositoryDeleteCascade(t *testing.T) {
	db := mock.NewDB(t)
	users := mock.CreateUsers(t, db)
	john, jane, ann := users[0], users[1], users[2]

	mock.CreateMicropost(t, db, john.ID, "john's post")
	janePost := mock.CreateMicropost(t, db, jane.ID, "jane's post")
	mock.Follow(t, db, john.ID, jane.ID)
	mock.Follow(t, db, jane.ID, john.ID)
	annFollowsJane := mock.Follow(t, db, ann.ID, jane.ID)

	repo := NewUserRepository(db)
	if err := repo.DeleteCascade(john.ID); err != nil {
		t.Fatalf("ユーザーの削除に失敗しました: %v", err)
	}

	if _, err := repo.FindByID(john.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("削除したユーザーが残っています: %v", err)
	}

	var posts []models.Micropost
	db.Find(&posts)
	if len(posts) != 1 || posts[0].ID != janePost.ID {
		t.Errorf("残った投稿 = %+v, want jane's post only", posts)
	}

	var rels []models.Relationship
	db.Find(&rels)
	if len(rels) != 1 || rels[0].ID != annFollowsJane.ID {
		t.Errorf("残ったフォロー関係 = %+v, want ann -> jane only", rels)
	}
}

func TestUserRepositoryDeleteCascadeMissingUser(t *testing.T) {
	db := mock.NewDB(t)
	repo := NewUserRepository(db)

	if err := repo.DeleteCascade(999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestUserRepositoryUpdateKeepsCreatedAt(t *testing.T) {
	db := mock.NewDB(t)
	users := mock.CreateUsers(t, db)
	repo := NewUserRepository(db)
	original, err := repo.FindByID(users[0].ID)
	if err != nil {
		t.Fatalf("ユーザーが見つかりません: %v", err)
	}

	// フォームから組み立てた構造体には created_at が含まれない
	form := &models.User{
		ID:             original.ID,
		Name:           "Renamed",
		Email:          original.Email,
		PasswordDigest: original.PasswordDigest,
	}
	if err := repo.Update(form); err != nil {
		t.Fatalf("ユーザーの更新に失敗しました: %v", err)
	}

	stored, err := repo.FindByID(original.ID)
	if err != nil {
		t.Fatalf("ユーザーが見つかりません: %v", err)
	}
	if stored.Name != "Renamed" {
		t.Errorf("Name = %q, want Renamed", stored.Name)
	}
	if !stored.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", stored.CreatedAt, original.CreatedAt)
	}
	if !form.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("更新後の構造体の CreatedAt = %v, want %v", form.CreatedAt, original.CreatedAt)
	}
}

func TestUserRepositoryUpdateMissingUser(t *testing.T) {
	db := mock.NewDB(t)
	repo := NewUserRepository(db)

	ghost := &models.User{ID: 42, Name: "Ghost", Email: "ghost@example.com", PasswordDigest: "x"}
	if err := repo.Update(ghost); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("存在しないユーザーが作成されました: count = %d", count)
	}
}
