package mysql

import (
	"context"

	"github.com/zemmendes/Lumera-App/internal/model"
)

func (s *Store) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) UpdateUser(ctx context.Context, user *model.User) error {
	return translate(s.db.WithContext(ctx).Save(user).Error)
}

func (s *Store) GetUsersByType(ctx context.Context, userType model.UserType) ([]model.User, error) {
	list := make([]model.User, 0)
	err := s.db.WithContext(ctx).
		Where("user_type = ?", userType).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}
