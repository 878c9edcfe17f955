package models

import "time"

// Review rows start unapproved and only become publicly visible after
// admin moderation.
type Review struct {
	ID           uint      `json:"id" gorm:"primary_key"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment" gorm:"type:text"`
	IsApproved   bool      `json:"is_approved" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
}
