// Package mock はテスト専用のフィクスチャとインメモリ SQLite データベースを提供する。
// _test.go からのみ利用すること
package mock

import (
	"fmt"
	"testing"

	"github.com/SketchShifter/sample_app_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB テスト用のインメモリ SQLite データベースを作成し、テーブルを作成する
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		tb.Fatalf("データベース接続に失敗しました: %v", err)
	}

	// :memory: は接続ごとに別のデータベースになるため接続を1本に固定する
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("SQLDBインスタンス取得に失敗しました: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		tb.Fatalf("外部キー制約の有効化に失敗しました: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		tb.Fatalf("マイグレーションに失敗しました: %v", err)
	}
	return db
}

// CreateUsers モックユーザーをデータベースに直接挿入する
func CreateUsers(tb testing.TB, db *gorm.DB) []models.User {
	tb.Helper()

	digest, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		tb.Fatalf("パスワードのハッシュ化に失敗しました: %v", err)
	}

	users := make([]models.User, len(Users))
	for i, u := range Users {
		u.PasswordDigest = string(digest)
		u.RememberToken = fmt.Sprintf("token-%d", i)
		if err := db.Create(&u).Error; err != nil {
			tb.Fatalf("モックユーザーの作成に失敗しました: %v", err)
		}
		users[i] = u
	}
	return users
}

// CreateMicropost 投稿をデータベースに直接挿入する
func CreateMicropost(tb testing.TB, db *gorm.DB, userID uint, content string) models.Micropost {
	tb.Helper()

	post := models.Micropost{UserID: userID, Content: content}
	if err := db.Create(&post).Error; err != nil {
		tb.Fatalf("投稿の作成に失敗しました: %v", err)
	}
	return post
}

// Follow フォロー関係をデータベースに直接挿入する
func Follow(tb testing.TB, db *gorm.DB, followerID, followedID uint) models.Relationship {
	tb.Helper()

	rel := models.Relationship{FollowerID: followerID, FollowedID: followedID}
	if err := db.Create(&rel).Error; err != nil {
		tb.Fatalf("フォロー関係の作成に失敗しました: %v", err)
	}
	return rel
}
