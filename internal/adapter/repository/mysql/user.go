package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "scholarhub-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *UserRepository) GetByToken(ctx context.Context, token string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("api_token = ?", token).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
