package service

import (
	"context"
	"errors"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

var ErrInvalidUserType = errors.New("invalid user type")

type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) GetProfile(ctx context.Context, id uint64) (*model.User, error) {
	return s.store.GetUser(ctx, id)
}

// ProfileUpdate nil 字段表示不修改
type ProfileUpdate struct {
	Email      *string
	Name       *string
	Bio        *string
	Avatar     *string
	WebsiteURL *string
}

// UpdateProfile 只能改自己的资料，userType 不可变
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, upd ProfileUpdate) (*model.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.Avatar != nil {
		user.Avatar = *upd.Avatar
	}
	if upd.WebsiteURL != nil {
		user.WebsiteURL = *upd.WebsiteURL
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListByType(ctx context.Context, userType model.UserType) ([]model.User, error) {
	if !userType.Valid() {
		return nil, ErrInvalidUserType
	}
	return s.store.GetUsersByType(ctx, userType)
}
