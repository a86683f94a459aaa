package models

// All マイグレーション対象のモデル一覧
func All() []interface{} {
	return []interface{}{
		&User{},
		&Relationship{},
		&Micropost{},
	}
}
