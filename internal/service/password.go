// File: internal/service/password.go
package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptGenerateFromPassword 測試可覆寫此變數以模擬 bcrypt 失敗
var bcryptGenerateFromPassword = bcrypt.GenerateFromPassword

// HashPassword 以 bcrypt 產生密碼雜湊，每次呼叫使用新的鹽值
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("HashPassword: 密碼不可為空")
	}
	hash, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("HashPassword: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword 驗證密碼是否與雜湊相符，任何比對失敗一律回傳 false
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
