package store

import (
	"time"

	"walltea/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IncomeStore 月度收入表
type IncomeStore struct {
	db *gorm.DB
}

// AddMonth 累加写入某月收入，已存在时在原值上相加而不是覆盖
func (s *IncomeStore) AddMonth(userID uint, month string, salary, sideGigs decimal.Decimal) error {
	row := models.Income{
		UserID:   userID,
		Month:    month,
		Salary:   salary,
		SideGigs: sideGigs,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "usuario_id"}, {Name: "mes"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"salario":    gorm.Expr("ROUND(rendas.salario + ?, 2)", salary),
			"bicos":      gorm.Expr("ROUND(rendas.bicos + ?, 2)", sideGigs),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
}

// ListMonthly 按月份升序
func (s *IncomeStore) ListMonthly(userID uint) ([]models.Income, error) {
	list := make([]models.Income, 0)
	err := s.db.Where("usuario_id = ?", userID).Order("mes ASC").Find(&list).Error
	return list, err
}
