package mock

import (
	"github.com/SketchShifter/sample_app_backend/internal/models"
)

// Password モックユーザー共通のパスワード
const Password = "password"

// Users モックユーザー
var Users = []models.User{
	{Name: "John Doe", Email: "john@example.com"},
	{Name: "Jane Smith", Email: "jane@example.com"},
	{Name: "Ann Lee", Email: "ann@example.com"},
}
