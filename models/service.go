package models

type ServiceCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Service struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	CategoryID  uint            `json:"category_id"`
	Category    ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	PriceUnit   string          `json:"price_unit"`
}
