package service

import (
	"context"
	"errors"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService struct {
	store    repository.Store
	sessions repository.SessionStore
}

func NewAuthService(store repository.Store, sessions repository.SessionStore) *AuthService {
	return &AuthService{store: store, sessions: sessions}
}

type RegisterInput struct {
	Username   string
	Password   string
	Email      string
	UserType   model.UserType
	Name       string
	Bio        string
	Avatar     string
	WebsiteURL string
}

// Register 注册成功即登录，返回新建的会话
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if _, err := s.store.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := pkg.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:   in.Username,
		Password:   hash,
		Email:      in.Email,
		UserType:   in.UserType,
		Name:       in.Name,
		Bio:        in.Bio,
		Avatar:     in.Avatar,
		WebsiteURL: in.WebsiteURL,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	sid, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, sid, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		// 用户不存在和密码错误对外不可区分
		return nil, "", ErrInvalidCredentials
	}
	if !pkg.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	sid, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, sid, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	return s.sessions.Delete(ctx, sid)
}
