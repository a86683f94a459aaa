package services

import (
	"errors"
	"fmt"

	"github.com/SketchShifter/sample_app_backend/internal/models"
	"github.com/SketchShifter/sample_app_backend/internal/monitoring"
	"github.com/SketchShifter/sample_app_backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RelationshipService フォロー関係に関するサービスインターフェース
type RelationshipService interface {
	IsFollowing(user, other *models.User) (bool, error)
	Follow(user, other *models.User) (*models.Relationship, error)
	Unfollow(user, other *models.User) error
	FollowedUsers(userID uint) ([]models.User, error)
	Followers(userID uint) ([]models.User, error)
}

// relationshipService RelationshipServiceの実装
type relationshipService struct {
	relationshipRepo repository.RelationshipRepository
	userRepo         repository.UserRepository
}

// NewRelationshipService RelationshipServiceを作成
func NewRelationshipService(relationshipRepo repository.RelationshipRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
	}
}

func alreadyFollowing() error {
	verr := NewValidationError(nil)
	verr.Add("followed_id", "すでにフォローしています")
	return verr
}

// IsFollowing user が other をフォローしているか
func (s *relationshipService) IsFollowing(user, other *models.User) (bool, error) {
	_, err := s.relationshipRepo.FindByPair(user.ID, other.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Follow user が other をフォローする
// 自分自身や既にフォロー済みのユーザーは ValidationError、存在しないユーザーは ErrReferentialIntegrity を返す
func (s *relationshipService) Follow(user, other *models.User) (*models.Relationship, error) {
	if user.ID == other.ID {
		verr := NewValidationError(nil)
		verr.Add("followed_id", "自分自身はフォローできません")
		return nil, verr
	}

	for _, id := range []uint{user.ID, other.ID} {
		if _, err := s.userRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: user_id=%d", ErrReferentialIntegrity, id)
			}
			return nil, err
		}
	}

	following, err := s.IsFollowing(user, other)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, alreadyFollowing()
	}

	rel := &models.Relationship{
		FollowerID: user.ID,
		FollowedID: other.ID,
	}
	if err := s.relationshipRepo.Create(rel); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 同時に同じフォローが作成された場合
			return nil, alreadyFollowing()
		}
		return nil, err
	}

	monitoring.RelationshipsCreated.Inc()
	logrus.WithFields(logrus.Fields{
		"follower_id": user.ID,
		"followed_id": other.ID,
	}).Info("フォローしました")

	return rel, nil
}

// Unfollow user が other のフォローを解除する
// フォローしていない場合は ErrNotFound を返す
func (s *relationshipService) Unfollow(user, other *models.User) error {
	rel, err := s.relationshipRepo.FindByPair(user.ID, other.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: ユーザー %d はユーザー %d をフォローしていません", ErrNotFound, user.ID, other.ID)
		}
		return err
	}

	if err := s.relationshipRepo.Delete(rel.ID); err != nil {
		return notFound(err)
	}

	monitoring.RelationshipsDestroyed.Inc()
	logrus.WithFields(logrus.Fields{
		"follower_id": user.ID,
		"followed_id": other.ID,
	}).Info("フォローを解除しました")

	return nil
}

// FollowedUsers ユーザーがフォローしているユーザー一覧を取得
func (s *relationshipService) FollowedUsers(userID uint) ([]models.User, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, notFound(err)
	}
	return s.relationshipRepo.ListFollowedUsers(userID)
}

// Followers ユーザーのフォロワー一覧を取得
func (s *relationshipService) Followers(userID uint) ([]models.User, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, notFound(err)
	}
	return s.relationshipRepo.ListFollowers(userID)
}
