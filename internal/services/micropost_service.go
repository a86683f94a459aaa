package services

import (
	"errors"
	"fmt"

	"github.com/SketchShifter/sample_app_backend/internal/models"
	"github.com/SketchShifter/sample_app_backend/internal/monitoring"
	"github.com/SketchShifter/sample_app_backend/internal/repository"
	"github.com/SketchShifter/sample_app_backend/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MicropostService 投稿に関するサービスインターフェース
type MicropostService interface {
	Create(userID uint, content string) (*models.Micropost, error)
	Delete(id, userID uint) error
	Feed(user *models.User) ([]models.Micropost, error)
}

// micropostService MicropostServiceの実装
type micropostService struct {
	micropostRepo repository.MicropostRepository
	userRepo      repository.UserRepository
	validator     *utils.Validator
}

// NewMicropostService MicropostServiceを作成
func NewMicropostService(micropostRepo repository.MicropostRepository, userRepo repository.UserRepository, validator *utils.Validator) MicropostService {
	return &micropostService{
		micropostRepo: micropostRepo,
		userRepo:      userRepo,
		validator:     validator,
	}
}

// Create 新しい投稿を作成
func (s *micropostService) Create(userID uint, content string) (*models.Micropost, error) {
	post := &models.Micropost{
		UserID:  userID,
		Content: content,
	}

	fields, err := s.validator.Struct(post)
	if err != nil {
		return nil, err
	}
	if fields != nil {
		return nil, NewValidationError(fields)
	}

	// 投稿者が存在するか確認
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user_id=%d", ErrReferentialIntegrity, userID)
		}
		return nil, err
	}

	if err := s.micropostRepo.Create(post); err != nil {
		return nil, err
	}

	monitoring.MicropostsCreated.Inc()
	logrus.WithFields(logrus.Fields{"user_id": userID, "micropost_id": post.ID}).Debug("投稿を作成しました")

	return post, nil
}

// Delete 投稿を削除
func (s *micropostService) Delete(id, userID uint) error {
	post, err := s.micropostRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}

	// 権限チェック
	if post.UserID != userID {
		return ErrForbidden
	}

	return notFound(s.micropostRepo.Delete(id))
}

// Feed ユーザーのフィード
// 現時点では本人の投稿のみを登録順に返し、フォロー中のユーザーの投稿は含まない
func (s *micropostService) Feed(user *models.User) ([]models.Micropost, error) {
	return s.micropostRepo.ListByUser(user.ID)
}
