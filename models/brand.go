package models

type Brand struct {
	ID          uint      `json:"id" gorm:"primary_key"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Logo        *string   `json:"logo"`
	Products    []Product `json:"-" gorm:"foreignKey:BrandID"`
}
