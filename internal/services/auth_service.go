package services

import (
	"errors"

	"github.com/SketchShifter/sample_app_backend/internal/models"
	"github.com/SketchShifter/sample_app_backend/internal/monitoring"
	"github.com/SketchShifter/sample_app_backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Authenticate(email, password string) (*models.User, error)
	FindByRememberToken(token string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo    repository.UserRepository
	credentials CredentialService
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, credentials CredentialService) AuthService {
	return &authService{
		userRepo:    userRepo,
		credentials: credentials,
	}
}

// Authenticate メールアドレスとパスワードでユーザーを認証
// 一致しない場合は ErrAuthenticationFailed を返す
func (s *authService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.Authentications.WithLabelValues("unknown_email").Inc()
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if !s.credentials.Verify(user.PasswordDigest, password) {
		monitoring.Authentications.WithLabelValues("wrong_password").Inc()
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Warn("パスワードが一致しません")
		return nil, ErrAuthenticationFailed
	}

	monitoring.Authentications.WithLabelValues("success").Inc()
	return user, nil
}

// FindByRememberToken remember token からユーザーを取得
func (s *authService) FindByRememberToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	user, err := s.userRepo.FindByRememberToken(token)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}
