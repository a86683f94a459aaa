package repository

import (
	"github.com/SketchShifter/sample_app_backend/internal/models"

	"gorm.io/gorm"
)

// RelationshipRepository フォロー関係に関するデータベース操作を行うインターフェース
type RelationshipRepository interface {
	Create(rel *models.Relationship) error
	FindByPair(followerID, followedID uint) (*models.Relationship, error)
	Delete(id uint) error
	ListFollowedUsers(followerID uint) ([]models.User, error)
	ListFollowers(followedID uint) ([]models.User, error)
	CountFollowedUsers(followerID uint) (int64, error)
	CountFollowers(followedID uint) (int64, error)
}

// relationshipRepository RelationshipRepositoryの実装
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository RelationshipRepositoryを作成
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// Create 新しいフォロー関係を作成
func (r *relationshipRepository) Create(rel *models.Relationship) error {
	return r.db.Create(rel).Error
}

// FindByPair follower から followed へのフォロー関係を検索
func (r *relationshipRepository) FindByPair(followerID, followedID uint) (*models.Relationship, error) {
	var rel models.Relationship
	if err := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&rel).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

// Delete フォロー関係を削除
func (r *relationshipRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Relationship{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFollowedUsers followerID のユーザーがフォローしているユーザー一覧を取得
func (r *relationshipRepository) ListFollowedUsers(followerID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Joins("JOIN relationships ON relationships.followed_id = users.id").
		Where("relationships.follower_id = ?", followerID).
		Order("relationships.id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListFollowers followedID のユーザーをフォローしているユーザー一覧を取得
func (r *relationshipRepository) ListFollowers(followedID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Joins("JOIN relationships ON relationships.follower_id = users.id").
		Where("relationships.followed_id = ?", followedID).
		Order("relationships.id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountFollowedUsers フォロー数を取得
func (r *relationshipRepository) CountFollowedUsers(followerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Relationship{}).Where("follower_id = ?", followerID).Count(&count).Error
	return count, err
}

// CountFollowers フォロワー数を取得
func (r *relationshipRepository) CountFollowers(followedID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Relationship{}).Where("followed_id = ?", followedID).Count(&count).Error
	return count, err
}
