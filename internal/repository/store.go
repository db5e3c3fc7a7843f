package repository

import (
	"context"

	"github.com/fisker/biteform-backend/pkg/metrics"
	"gorm.io/gorm"
)

// Store 聚合各仓储，事务内通过 tx 构造新的 Store
type Store struct {
	db *gorm.DB

	Forms       *FormRepository
	Fields      *FieldRepository
	Submissions *SubmissionRepository
	Responses   *ResponseRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Forms:       NewFormRepository(db),
		Fields:      NewFieldRepository(db),
		Submissions: NewSubmissionRepository(db),
		Responses:   NewResponseRepository(db),
	}
}

// DB 返回底层连接
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction 在一个事务中执行 fn，fn 返回错误或 ctx 取消时整体回滚
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	metrics.ObserveTransaction(err)
	return err
}
