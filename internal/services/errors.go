package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 対象のレコードが存在しない
	ErrNotFound = errors.New("レコードが見つかりません")
	// ErrReferentialIntegrity 参照先のユーザーが存在しない
	ErrReferentialIntegrity = errors.New("参照先のユーザーが存在しません")
	// ErrAuthenticationFailed メールアドレスまたはパスワードが一致しない
	ErrAuthenticationFailed = errors.New("メールアドレスまたはパスワードが正しくありません")
	// ErrForbidden 操作する権限がない
	ErrForbidden = errors.New("この操作を行う権限がありません")
)

// ValidationError フィールドごとの入力エラー
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError ValidationErrorを作成
func NewValidationError(fields map[string][]string) *ValidationError {
	if fields == nil {
		fields = make(map[string][]string)
	}
	return &ValidationError{Fields: fields}
}

// Add フィールドにエラーメッセージを追加
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Has フィールドにエラーがあるか
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// Empty エラーが1つもないか
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], ", "))
	}
	return "入力内容に誤りがあります: " + strings.Join(parts, "; ")
}

// notFound gorm.ErrRecordNotFound を ErrNotFound に変換する
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
