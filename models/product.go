package models

// Product is soft-deleted through IsActive; the row is never removed,
// only excluded from customer-facing queries.
type Product struct {
	ID              uint    `json:"id" gorm:"primary_key"`
	Name            string  `json:"name" gorm:"not null"`
	Description     string  `json:"description" gorm:"type:text"`
	Price           float64 `json:"price"`
	Image           *string `json:"image"`
	OnlineStoreLink string  `json:"online_store_link"`
	BrandID         uint    `json:"brand_id" gorm:"index"`
	CategoryID      uint    `json:"category_id" gorm:"index"`
	IsActive        bool    `json:"is_active" gorm:"not null;default:true"`
}

// ProductRow is a product joined with its brand and category names,
// as returned by the listing and detail queries. The names are
// pointers because the joins are LEFT JOINs and either id may be
// stale after a brand or category was deleted.
type ProductRow struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Image           *string `json:"image"`
	OnlineStoreLink string  `json:"online_store_link"`
	BrandID         uint    `json:"brand_id"`
	CategoryID      uint    `json:"category_id"`
	IsActive        bool    `json:"is_active"`
	BrandName       *string `json:"brand_name"`
	CategoryName    *string `json:"category_name"`
}
