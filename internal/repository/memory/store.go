// Package memory 单进程内存存储，仅用于开发与测试部署
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

type Store struct {
	mu sync.RWMutex

	users       map[uint64]model.User
	campaigns   map[uint64]model.Campaign
	connections map[uint64]model.Connection

	nextUserID       uint64
	nextCampaignID   uint64
	nextConnectionID uint64
}

func NewStore() *Store {
	return &Store{
		users:       make(map[uint64]model.User),
		campaigns:   make(map[uint64]model.Campaign),
		connections: make(map[uint64]model.Connection),
	}
}

func (s *Store) GetUser(_ context.Context, id uint64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 与 mysql 的唯一索引保持同样的可观测行为
	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *Store) UpdateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUsersByType(_ context.Context, userType model.UserType) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.User, 0)
	for _, u := range s.users {
		if u.UserType == userType {
			list = append(list, u)
		}
	}
	sortByID(list, func(u model.User) uint64 { return u.ID })
	return list, nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign *model.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCampaignID++
	campaign.ID = s.nextCampaignID
	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	s.campaigns[campaign.ID] = *campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id uint64) (*model.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *Store) GetCampaignsByCompany(_ context.Context, companyID uint64) ([]model.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Campaign, 0)
	for _, c := range s.campaigns {
		if c.CompanyID == companyID {
			list = append(list, c)
		}
	}
	sortByID(list, func(c model.Campaign) uint64 { return c.ID })
	return list, nil
}

func (s *Store) GetActiveCampaigns(_ context.Context) ([]model.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Campaign, 0)
	for _, c := range s.campaigns {
		if c.Status == model.CampaignStatusActive {
			list = append(list, c)
		}
	}
	sortByID(list, func(c model.Campaign) uint64 { return c.ID })
	return list, nil
}

func (s *Store) CreateConnection(_ context.Context, connection *model.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextConnectionID++
	connection.ID = s.nextConnectionID
	now := time.Now()
	connection.CreatedAt = now
	connection.UpdatedAt = now
	s.connections[connection.ID] = *connection
	return nil
}

func (s *Store) GetConnectionsByInfluencer(_ context.Context, influencerID uint64) ([]model.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Connection, 0)
	for _, c := range s.connections {
		if c.InfluencerID == influencerID {
			list = append(list, c)
		}
	}
	sortByID(list, func(c model.Connection) uint64 { return c.ID })
	return list, nil
}

func (s *Store) GetConnectionsByCampaign(_ context.Context, campaignID uint64) ([]model.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Connection, 0)
	for _, c := range s.connections {
		if c.CampaignID == campaignID {
			list = append(list, c)
		}
	}
	sortByID(list, func(c model.Connection) uint64 { return c.ID })
	return list, nil
}

func (s *Store) UpdateConnectionStatus(_ context.Context, id uint64, status model.ConnectionStatus) (*model.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.connections[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	s.connections[id] = c
	return &c, nil
}

// sortByID 列表按插入顺序返回，和 mysql 的 ORDER BY id 对齐
func sortByID[T any](list []T, id func(T) uint64) {
	sort.Slice(list, func(i, j int) bool { return id(list[i]) < id(list[j]) })
}
