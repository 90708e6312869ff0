// File: internal/service/errors.go
package service

import "errors"

// 服務層的錯誤種類，handler 以 errors.Is 轉成對應的 HTTP 狀態
var (
	ErrConflict        = errors.New("resource already exists")
	ErrUnauthenticated = errors.New("authentication failed")
	ErrNotFound        = errors.New("resource not found")
)
