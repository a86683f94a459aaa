package services

import (
	"testing"
	"time"

	"github.com/SketchShifter/sample_app_backend/internal/mock"
	"github.com/SketchShifter/sample_app_backend/internal/repository"
	"github.com/SketchShifter/sample_app_backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testEnv テスト用に組み立てたサービス一式
type testEnv struct {
	db            *gorm.DB
	users         UserService
	auth          AuthService
	relationships RelationshipService
	microposts    MicropostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := mock.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	micropostRepo := repository.NewMicropostRepository(db)
	credentials := NewBcryptCredentialService(bcrypt.MinCost)
	validator := utils.NewValidator()

	return &testEnv{
		db:            db,
		users:         NewUserService(userRepo, credentials, NewRememberTokenGenerator(16), validator, time.Minute, time.Minute),
		auth:          NewAuthService(userRepo, credentials),
		relationships: NewRelationshipService(relationshipRepo, userRepo),
		microposts:    NewMicropostService(micropostRepo, userRepo, validator),
	}
}
