package models

import "time"

// Admin is a back-office account that manages blogs, contacts and rooms
type Admin struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Username  string     `json:"username" gorm:"unique;not null"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Name      string     `json:"name"`
	Role      string     `json:"role" gorm:"default:admin"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
