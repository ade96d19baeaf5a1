package repository

import (
	"context"

	"accorcia/internal/model"
)

// CreateUser inserts a user; a taken username or email yields ErrDuplicateKey
func (r *SQLRepository) CreateUser(ctx context.Context, u *model.User) error {
	return translateError(r.db.WithContext(ctx).Create(u).Error)
}

// GetUserByUsername retrieves a user by username
func (r *SQLRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

// ExistsByUsername checks if a username is taken
func (r *SQLRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if an email is taken
func (r *SQLRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// UpdatePassword overwrites the password hash of a user
func (r *SQLRepository) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
