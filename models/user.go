package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User 用户模型
// Balance 为流水累加的余额，只能经由记账引擎调整
type User struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"column:nome;size:100;not null"`
	Email     string          `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password  string          `json:"-" gorm:"column:senha;size:255;not null"`
	Balance   decimal.Decimal `json:"balance" gorm:"column:saldo;type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "usuarios"
}
