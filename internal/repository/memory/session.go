package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

type sessionEntry struct {
	userID    uint64
	expiresAt time.Time
}

// SessionStore 内存登录态，后台定时清理过期 sid
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewSessionStore(ttl, sweepInterval time.Duration) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.sweep(sweepInterval)
	return s
}

func (s *SessionStore) Create(_ context.Context, userID uint64) (string, error) {
	sid, err := pkg.NewSessionID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[sid] = sessionEntry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return sid, nil
}

func (s *SessionStore) Get(_ context.Context, sid string) (uint64, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sid]
	s.mu.RUnlock()

	if !ok {
		return 0, repository.ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return 0, repository.ErrNotFound
	}
	return entry.userID, nil
}

func (s *SessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Close() error {
	close(s.stop)
	<-s.done
	return nil
}

func (s *SessionStore) sweep(interval time.Duration) {
	defer close(s.done)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			s.sweepOnce()
		}
	}
}

func (s *SessionStore) sweepOnce() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for sid, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, sid)
		}
	}
}
