package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/SketchShifter/sample_app_backend/internal/config"
	"github.com/SketchShifter/sample_app_backend/internal/logger"
	"github.com/SketchShifter/sample_app_backend/internal/models"
	"github.com/SketchShifter/sample_app_backend/internal/repository"
	"github.com/SketchShifter/sample_app_backend/internal/services"
	"github.com/SketchShifter/sample_app_backend/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultUsers        = 100
	defaultPostsPerUser = 50
	posters             = 6
	samplePassword      = "foobar"
)

// seeder サンプルデータの投入に使うサービス一式
type seeder struct {
	users         services.UserService
	relationships services.RelationshipService
	microposts    services.MicropostService
}

func newSeeder(db *gorm.DB, cfg *config.Config) *seeder {
	userRepo := repository.NewUserRepository(db)
	credentials := services.NewBcryptCredentialService(cfg.Auth.BcryptCost)
	validator := utils.NewValidator()

	return &seeder{
		users: services.NewUserService(
			userRepo,
			credentials,
			services.NewRememberTokenGenerator(cfg.Auth.RememberTokenBytes),
			validator,
			cfg.Cache.UserTTL,
			cfg.Cache.CleanupInterval,
		),
		relationships: services.NewRelationshipService(repository.NewRelationshipRepository(db), userRepo),
		microposts:    services.NewMicropostService(repository.NewMicropostRepository(db), userRepo, validator),
	}
}

// run ユーザー、投稿、フォロー関係を作成する
// 先頭のユーザーが 3〜51 番目をフォローし、4〜41 番目のユーザーが先頭のユーザーをフォローする
func (s *seeder) run(userCount, postsPerUser int) error {
	users := make([]*models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		name, email := "Example User", "example@railstutorial.org"
		if i > 0 {
			name = fmt.Sprintf("Sample User %d", i)
			email = fmt.Sprintf("example-%d@railstutorial.org", i)
		}
		user, err := s.users.Create(name, email, samplePassword, samplePassword)
		if err != nil {
			return fmt.Errorf("ユーザーの作成に失敗しました (%s): %w", email, err)
		}
		users = append(users, user)
	}

	for n := 0; n < postsPerUser; n++ {
		for i := 0; i < posters && i < len(users); i++ {
			content := fmt.Sprintf("Sample post %d from %s.", n+1, users[i].Name)
			if _, err := s.microposts.Create(users[i].ID, content); err != nil {
				return fmt.Errorf("投稿の作成に失敗しました: %w", err)
			}
		}
	}

	if len(users) == 0 {
		return nil
	}
	first := users[0]
	for i := 2; i <= 50 && i < len(users); i++ {
		if _, err := s.relationships.Follow(first, users[i]); err != nil {
			return fmt.Errorf("フォローに失敗しました: %w", err)
		}
	}
	for i := 3; i <= 40 && i < len(users); i++ {
		if _, err := s.relationships.Follow(users[i], first); err != nil {
			return fmt.Errorf("フォローに失敗しました: %w", err)
		}
	}
	return nil
}

func main() {
	// コマンドライン引数の解析
	userCount := flag.Int("users", defaultUsers, "作成するユーザー数")
	postsPerUser := flag.Int("posts", defaultPostsPerUser, "先頭6ユーザーそれぞれの投稿数")
	flag.Parse()

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("設定の読み込みに失敗しました: %v", err)
	}
	logger.InitLogger(cfg.Log)

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("データベース接続に失敗しました: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		logrus.Fatalf("テーブルの作成に失敗しました: %v", err)
	}

	start := time.Now()
	if err := newSeeder(db, cfg).run(*userCount, *postsPerUser); err != nil {
		logrus.Fatalf("サンプルデータの投入に失敗しました: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":    *userCount,
		"posts":    *postsPerUser,
		"duration": time.Since(start).String(),
	}).Info("サンプルデータの投入が完了しました")
}
