package models

// Category 消费类别（只读参考数据）
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;not null;uniqueIndex"`
}

func (Category) TableName() string {
	return "categorias"
}

// 默认类别
const (
	CategoryFood          = "Alimentação"
	CategoryTransport     = "Transporte"
	CategoryShopping      = "Compras"
	CategoryEntertainment = "Lazer"
	CategoryMedical       = "Saúde"
	CategoryEducation     = "Educação"
	CategoryHousing       = "Moradia"
	CategoryOther         = "Outros"
)

// GetCategories 获取所有默认类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryMedical,
		CategoryEducation,
		CategoryHousing,
		CategoryOther,
	}
}
