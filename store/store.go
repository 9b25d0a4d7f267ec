// Package store 对流水、预算、余额、收入、类别表的读写封装
// 所有方法都基于传入的 *gorm.DB，可在同一个数据库事务里组合使用
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 记录不存在或不属于该用户
var ErrNotFound = errors.New("record not found")

// Store 聚合各个表的存储
type Store struct {
	db *gorm.DB

	Ledger     *LedgerStore
	Budgets    *BudgetStore
	Balances   *BalanceStore
	Incomes    *IncomeStore
	Categories *CategoryStore
}

// New 基于连接（或事务）创建 Store
func New(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Ledger:     &LedgerStore{db: db},
		Budgets:    &BudgetStore{db: db},
		Balances:   &BalanceStore{db: db},
		Incomes:    &IncomeStore{db: db},
		Categories: &CategoryStore{db: db},
	}
}

// WithContext 返回绑定 ctx 的 Store
func (s *Store) WithContext(ctx context.Context) *Store {
	return New(s.db.WithContext(ctx))
}

// Transaction 在一个数据库事务中执行 fn，fn 返回错误时整体回滚
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
