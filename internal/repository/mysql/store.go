package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

type Store struct {
	db *gorm.DB
}

// NewStore 自动建表（开发阶段 OK）
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&model.User{}, &model.Campaign{}, &model.Connection{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	default:
		return err
	}
}
