package repository

import (
	"github.com/SketchShifter/sample_app_backend/internal/models"

	"gorm.io/gorm"
)

// MicropostRepository 投稿に関するデータベース操作を行うインターフェース
type MicropostRepository interface {
	Create(post *models.Micropost) error
	FindByID(id uint) (*models.Micropost, error)
	Delete(id uint) error
	ListByUser(userID uint) ([]models.Micropost, error)
	CountByUser(userID uint) (int64, error)
}

// micropostRepository MicropostRepositoryの実装
type micropostRepository struct {
	db *gorm.DB
}

// NewMicropostRepository MicropostRepositoryを作成
func NewMicropostRepository(db *gorm.DB) MicropostRepository {
	return &micropostRepository{db: db}
}

// Create 新しい投稿を作成
func (r *micropostRepository) Create(post *models.Micropost) error {
	return r.db.Create(post).Error
}

// FindByID IDで投稿を検索
func (r *micropostRepository) FindByID(id uint) (*models.Micropost, error) {
	var post models.Micropost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete 投稿を削除
func (r *micropostRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Micropost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser ユーザーの投稿を登録順に取得
func (r *micropostRepository) ListByUser(userID uint) ([]models.Micropost, error) {
	var posts []models.Micropost
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByUser ユーザーの投稿数を取得
func (r *micropostRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Micropost{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
