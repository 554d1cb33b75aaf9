package models

import (
	"time"

	"github.com/lib/pq"
)

// User is a public account: a family member, patient or caregiver
type User struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Email         string        `json:"email" gorm:"unique;not null"`
	Password      string        `json:"-"`
	Role          string        `json:"role" gorm:"default:family_member"`
	PhoneNumber   string        `json:"phoneNumber,omitempty"`
	DateOfBirth   *time.Time    `json:"dateOfBirth,omitempty"`
	IsActive      bool          `json:"isActive" gorm:"default:true"`
	EmailVerified bool          `json:"emailVerified" gorm:"default:false"`
	LastLogin     *time.Time    `json:"lastLogin,omitempty"`
	SavedRoomIDs  pq.Int64Array `json:"savedRoomIds" gorm:"type:integer[]"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// FullName joins first and last name for display
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
