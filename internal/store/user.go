// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mockmate/internal/database"
	"mockmate/internal/model"
)

const userColumns = `id, first_name, last_name, email, password_hash, university, study_field, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.University,
		&user.StudyField,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser 新增使用者並回填資料庫產生的欄位
func CreateUser(ctx context.Context, db database.DB, user *model.User) error {
	err := db.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, university, study_field)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, updated_at`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.University, user.StudyField,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

// FindUserByEmail 依 email 查詢使用者，包含已停用帳號
func FindUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	user, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("FindUserByEmail: %w", err)
	}
	return user, nil
}

// FindUserByID 依 id 查詢使用者，包含已停用帳號
func FindUserByID(ctx context.Context, db database.DB, id int) (*model.User, error) {
	user, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("FindUserByID: %w", err)
	}
	return user, nil
}

// UpdateUserProfile 更新啟用中使用者的個人資料
func UpdateUserProfile(ctx context.Context, db database.DB, user *model.User) error {
	err := db.QueryRow(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, university = $3, study_field = $4, updated_at = now()
		WHERE id = $5 AND is_active
		RETURNING updated_at`,
		user.FirstName, user.LastName, user.University, user.StudyField, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("UpdateUserProfile: %w", err)
	}
	return nil
}

// UpdateUserPassword 替換啟用中使用者的密碼雜湊
func UpdateUserPassword(ctx context.Context, db database.DB, id int, passwordHash string) error {
	tag, err := db.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = now()
		WHERE id = $2 AND is_active`,
		passwordHash, id)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUserPassword: %w", pgx.ErrNoRows)
	}
	return nil
}

// UserExists 檢查 id 是否對應到啟用中的使用者
func UserExists(ctx context.Context, db database.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND is_active)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("UserExists: %w", err)
	}
	return exists, nil
}
