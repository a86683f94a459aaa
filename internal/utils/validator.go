package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm/schema"
)

// EmailPattern メールアドレスの形式 (大文字小文字を区別しない)
var EmailPattern = regexp.MustCompile(`(?i)\A[\w+\-.]+@[a-z\d\-.]+\.[a-z]+\z`)

var columnNamer = schema.NamingStrategy{}

// Validator 構造体の validate タグに従って値を検証する
type Validator struct {
	validate *validator.Validate
}

// NewValidator Validatorを作成
func NewValidator() *Validator {
	v := validator.New()

	// エラーのフィールド名をカラム名 (snake_case) にそろえる
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return columnNamer.ColumnName("", field.Name)
	})

	// 空白のみの文字列も未入力として扱う
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// validator の組み込み email とは規則が異なるため独自に登録する
	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return EmailPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct 構造体を検証し、フィールド名ごとのエラーメッセージを返す
// 問題がなければ nil を返す
func (v *Validator) Struct(s interface{}) (map[string][]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, err
	}

	messages := make(map[string][]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages[fe.Field()] = append(messages[fe.Field()], message(fe))
	}
	return messages, nil
}

// message タグごとのエラーメッセージ
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "必須です"
	case "max":
		return fmt.Sprintf("%s文字以内で入力してください", fe.Param())
	case "min":
		return fmt.Sprintf("%s文字以上で入力してください", fe.Param())
	case "email_format":
		return "メールアドレスの形式が正しくありません"
	case "eqfield":
		return "パスワードと一致しません"
	default:
		return fmt.Sprintf("不正な値です (%s)", fe.Tag())
	}
}
