// File: internal/service/account.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"mockmate/internal/config"
	"mockmate/internal/database"
	"mockmate/internal/model"
	"mockmate/internal/store"
)

// 測試可覆寫的 store 與密碼函式
var (
	findUserByEmail    = store.FindUserByEmail
	findUserByID       = store.FindUserByID
	createUser         = store.CreateUser
	updateUserProfile  = store.UpdateUserProfile
	updateUserPassword = store.UpdateUserPassword
	userExists         = store.UserExists
	hashPassword       = HashPassword
	verifyPassword     = VerifyPassword
	issueAccessToken   = IssueAccessToken
)

// RegisterInput 註冊所需欄位，University 與 StudyField 可留空
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	University *string
	StudyField *string
}

// ProfileInput 更新個人資料所需欄位
type ProfileInput struct {
	FirstName  string
	LastName   string
	University *string
	StudyField *string
}

// RegisterUser 建立帳號並立即簽發存取令牌
// email 不分大小寫，與既有帳號（含停用）重複時回傳 ErrConflict
func RegisterUser(ctx context.Context, db database.DB, cfg config.JWT, in RegisterInput) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := findUserByEmail(ctx, db, email)
	if err == nil {
		return nil, "", fmt.Errorf("RegisterUser: %w", ErrConflict)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", fmt.Errorf("RegisterUser: %w", err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("RegisterUser: %w", err)
	}

	user := &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		University:   in.University,
		StudyField:   in.StudyField,
	}
	if err := createUser(ctx, db, user); err != nil {
		return nil, "", fmt.Errorf("RegisterUser: %w", err)
	}

	token, err := issueAccessToken(user, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("RegisterUser: %w", err)
	}
	return user, token, nil
}

// LoginUser 驗證帳密並簽發存取令牌
// 帳號不存在、已停用、密碼錯誤一律回傳 ErrUnauthenticated，不洩漏原因
func LoginUser(ctx context.Context, db database.DB, cfg config.JWT, email, password string) (*model.User, string, error) {
	user, err := findUserByEmail(ctx, db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", fmt.Errorf("LoginUser: %w", ErrUnauthenticated)
		}
		return nil, "", fmt.Errorf("LoginUser: %w", err)
	}
	if !user.IsActive || !verifyPassword(password, user.PasswordHash) {
		return nil, "", fmt.Errorf("LoginUser: %w", ErrUnauthenticated)
	}

	token, err := issueAccessToken(user, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("LoginUser: %w", err)
	}
	return user, token, nil
}

// GetProfile 取得啟用中使用者的個人資料
func GetProfile(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	user, err := findUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetProfile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetProfile: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("GetProfile: %w", ErrNotFound)
	}
	return user, nil
}

// UpdateProfile 更新啟用中使用者的個人資料並回傳更新後內容
func UpdateProfile(ctx context.Context, db database.DB, userID int, in ProfileInput) (*model.User, error) {
	user, err := GetProfile(ctx, db, userID)
	if err != nil {
		return nil, fmt.Errorf("UpdateProfile: %w", err)
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.University = in.University
	user.StudyField = in.StudyField

	if err := updateUserProfile(ctx, db, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("UpdateProfile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("UpdateProfile: %w", err)
	}
	return user, nil
}

// ChangePassword 驗證現行密碼後替換為新密碼
func ChangePassword(ctx context.Context, db database.DB, userID int, currentPassword, newPassword string) error {
	user, err := GetProfile(ctx, db, userID)
	if err != nil {
		return fmt.Errorf("ChangePassword: %w", err)
	}
	if !verifyPassword(currentPassword, user.PasswordHash) {
		return fmt.Errorf("ChangePassword: %w", ErrUnauthenticated)
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("ChangePassword: %w", err)
	}
	if err := updateUserPassword(ctx, db, userID, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ChangePassword: %w", ErrNotFound)
		}
		return fmt.Errorf("ChangePassword: %w", err)
	}
	return nil
}

// ValidateUser 檢查 id 是否對應到啟用中的使用者
func ValidateUser(ctx context.Context, db database.DB, userID int) (bool, error) {
	exists, err := userExists(ctx, db, userID)
	if err != nil {
		return false, fmt.Errorf("ValidateUser: %w", err)
	}
	return exists, nil
}
