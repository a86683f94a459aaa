package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SketchShifter/sample_app_backend/internal/models"
	"github.com/SketchShifter/sample_app_backend/internal/monitoring"
	"github.com/SketchShifter/sample_app_backend/internal/repository"
	"github.com/SketchShifter/sample_app_backend/internal/utils"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	Create(name, email, password, passwordConfirmation string) (*models.User, error)
	Save(user *models.User) error
	GetByID(id uint) (*models.User, error)
	Destroy(id uint) error
}

// userService UserServiceの実装
type userService struct {
	userRepo    repository.UserRepository
	credentials CredentialService
	tokens      TokenGenerator
	validator   *utils.Validator
	cache       *cache.Cache
}

// NewUserService UserServiceを作成
func NewUserService(
	userRepo repository.UserRepository,
	credentials CredentialService,
	tokens TokenGenerator,
	validator *utils.Validator,
	cacheTTL time.Duration,
	cacheCleanup time.Duration,
) UserService {
	return &userService{
		userRepo:    userRepo,
		credentials: credentials,
		tokens:      tokens,
		validator:   validator,
		cache:       cache.New(cacheTTL, cacheCleanup),
	}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Create ユーザー登録
func (s *userService) Create(name, email, password, passwordConfirmation string) (*models.User, error) {
	user := &models.User{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	}
	if err := s.Save(user); err != nil {
		return nil, err
	}

	monitoring.UsersCreated.Inc()
	logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("ユーザーを登録しました")

	return user, nil
}

// Save ユーザーを検証して保存する
// 検証、メールアドレスの小文字化、パスワードのハッシュ化、remember token の再生成、保存の順に行う
// ID が 0 のユーザーは新規作成する
func (s *userService) Save(user *models.User) error {
	if err := s.validate(user); err != nil {
		return err
	}

	// 保存に成功するまで呼び出し元の user は変更しない
	record := *user
	record.Email = strings.ToLower(user.Email)

	digest, err := s.credentials.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("パスワードのハッシュ化に失敗しました: %w", err)
	}
	record.PasswordDigest = digest

	token, err := s.tokens.Generate()
	if err != nil {
		return fmt.Errorf("remember token の生成に失敗しました: %w", err)
	}
	record.RememberToken = token

	if record.ID == 0 {
		err = s.userRepo.Create(&record)
	} else {
		err = s.userRepo.Update(&record)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 検証と保存の間に同じメールアドレスが登録された場合
		verr := NewValidationError(nil)
		verr.Add("email", "すでに使用されています")
		return verr
	}
	if err != nil {
		// 削除済みのユーザーは再作成しない
		return notFound(err)
	}
	*user = record

	s.cache.Delete(userCacheKey(user.ID))
	logrus.WithFields(logrus.Fields{"user_id": user.ID}).Debug("ユーザーを保存しました")

	return nil
}

// validate 入力値とメールアドレスの重複を検証
func (s *userService) validate(user *models.User) error {
	fields, err := s.validator.Struct(user)
	if err != nil {
		return err
	}
	verr := NewValidationError(fields)

	if !verr.Has("email") {
		taken, err := s.userRepo.EmailTaken(user.Email, user.ID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("email", "すでに使用されています")
		}
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	if cached, ok := s.cache.Get(userCacheKey(id)); ok {
		user := cached.(models.User)
		return &user, nil
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}

	s.cache.Set(userCacheKey(id), *user, cache.DefaultExpiration)
	return user, nil
}

// Destroy ユーザーを削除
// 投稿、フォロー関係、被フォロー関係も同じトランザクションで削除される
func (s *userService) Destroy(id uint) error {
	if err := s.userRepo.DeleteCascade(id); err != nil {
		return notFound(err)
	}

	s.cache.Delete(userCacheKey(id))
	monitoring.UsersDestroyed.Inc()
	logrus.WithFields(logrus.Fields{"user_id": id}).Info("ユーザーを削除しました")

	return nil
}
