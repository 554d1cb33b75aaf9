package models

import "time"

// Contact is one contact-form submission. Reference is the ticket id
// quoted back to the sender.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reference string    `json:"reference" gorm:"uniqueIndex"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;index"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:new;index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
