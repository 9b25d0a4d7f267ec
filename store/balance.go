package store

import (
	"walltea/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BalanceStore 用户余额累加器
type BalanceStore struct {
	db *gorm.DB
}

// Adjust saldo = ROUND(saldo + delta, 2)，用户不存在时返回 ErrNotFound
func (s *BalanceStore) Adjust(userID uint, delta decimal.Decimal) error {
	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("saldo", gorm.Expr("ROUND(saldo + ?, 2)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Get 读取用户（含余额）
func (s *BalanceStore) Get(userID uint) (*models.User, error) {
	var u models.User
	if err := s.db.Take(&u, userID).Error; err != nil {
		return nil, notFound(err)
	}
	u.Balance = u.Balance.Round(MoneyScale)
	return &u, nil
}
