package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

// SessionStore sessions 表按需创建，过期行在读写路径上顺手清理
type SessionStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessionStore(db *gorm.DB, ttl time.Duration) (*SessionStore, error) {
	if err := db.AutoMigrate(&model.Session{}); err != nil {
		return nil, err
	}
	return &SessionStore{db: db, ttl: ttl}, nil
}

func (s *SessionStore) Create(ctx context.Context, userID uint64) (string, error) {
	sid, err := pkg.NewSessionID()
	if err != nil {
		return "", err
	}

	session := model.Session{
		SID:       sid,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return "", err
	}

	// 顺手清理过期行
	s.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&model.Session{})
	return sid, nil
}

func (s *SessionStore) Get(ctx context.Context, sid string) (uint64, error) {
	var session model.Session
	err := s.db.WithContext(ctx).Where("sid = ?", sid).First(&session).Error
	if err != nil {
		return 0, translate(err)
	}
	if time.Now().After(session.ExpiresAt) {
		s.db.WithContext(ctx).Delete(&session)
		return 0, repository.ErrNotFound
	}
	return session.UserID, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return translate(s.db.WithContext(ctx).Where("sid = ?", sid).Delete(&model.Session{}).Error)
}

func (s *SessionStore) Close() error {
	return nil
}
