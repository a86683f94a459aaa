package repository

import (
	"strings"

	"github.com/SketchShifter/sample_app_backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository ユーザーに関するデータベース操作を行うインターフェース
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByRememberToken(token string) (*models.User, error)
	EmailTaken(email string, exceptID uint) (bool, error)
	Update(user *models.User) error
	DeleteCascade(id uint) error
}

// userRepository UserRepositoryの実装
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository UserRepositoryを作成
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 新しいユーザーを作成
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID IDでユーザーを検索
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail メールアドレスでユーザーを検索 (大文字小文字を区別しない)
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByRememberToken remember token でユーザーを検索
func (r *userRepository) FindByRememberToken(token string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("remember_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken exceptID 以外のユーザーがメールアドレスを使用しているか
func (r *userRepository) EmailTaken(email string, exceptID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where("LOWER(email) = ?", strings.ToLower(email))
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update ユーザー情報を更新
// 存在しないユーザーは作成せず gorm.ErrRecordNotFound を返す。created_at は更新しない
func (r *userRepository) Update(user *models.User) error {
	result := r.db.Model(user).Select("*").Omit("id", "created_at").Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// 呼び出し元の構造体に保存済みの作成日時を反映する
	var stored models.User
	if err := r.db.Select("created_at").First(&stored, user.ID).Error; err != nil {
		return err
	}
	user.CreatedAt = stored.CreatedAt
	return nil
}

// DeleteCascade ユーザーと、その投稿・フォロー関係・被フォロー関係を1つのトランザクションで削除
func (r *userRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Micropost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ?", id).Delete(&models.Relationship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("followed_id = ?", id).Delete(&models.Relationship{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		// 存在しないユーザーの場合はロールバックする
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
