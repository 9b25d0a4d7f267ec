package store

import (
	"walltea/models"

	"gorm.io/gorm"
)

// CategoryStore 类别表（只读）
type CategoryStore struct {
	db *gorm.DB
}

func (s *CategoryStore) List() ([]models.Category, error) {
	list := make([]models.Category, 0)
	err := s.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (s *CategoryStore) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Name 类别名称
func (s *CategoryStore) Name(id uint) (string, error) {
	var c models.Category
	if err := s.db.Select("id", "name").Take(&c, id).Error; err != nil {
		return "", notFound(err)
	}
	return c.Name, nil
}
