package models

import (
	"encoding/json"
	"time"
)

// Location is the embedded address block of a room
type Location struct {
	City    string `json:"city" gorm:"column:city" validate:"required"`
	Area    string `json:"area" gorm:"column:area" validate:"required"`
	Address string `json:"address" gorm:"column:address" validate:"required"`
}

// Pricing holds the monthly and one-time charges of a room.
// AdmissionCharge and PettyCashReserve are optional one-time amounts.
type Pricing struct {
	Rent             int    `json:"rent" gorm:"column:rent" validate:"gte=0"`
	SecurityDeposit  int    `json:"securityDeposit" gorm:"column:security_deposit" validate:"gte=0"`
	AdmissionCharge  *int   `json:"admissionCharge,omitempty" gorm:"column:admission_charge" validate:"omitempty,gte=0"`
	PettyCashReserve *int   `json:"pettyCashReserve,omitempty" gorm:"column:petty_cash_reserve" validate:"omitempty,gte=0"`
	Currency         string `json:"currency" gorm:"column:currency;default:INR" validate:"oneof=INR USD EUR"`
}

// LifestyleInfo is the lifestyle category rating plus its amenity list
type LifestyleInfo struct {
	Rating    float64         `json:"rating" gorm:"column:lifestyle_rating" validate:"gte=1,lte=10"`
	Amenities json.RawMessage `json:"amenities" gorm:"column:lifestyle_amenities;type:json"`
}

// MedicalInfo is the medical category rating plus its service list
type MedicalInfo struct {
	Rating   float64         `json:"rating" gorm:"column:medical_rating" validate:"gte=1,lte=10"`
	Services json.RawMessage `json:"services" gorm:"column:medical_features;type:json"`
}

// ServicesInfo is the services category rating plus its offering list
type ServicesInfo struct {
	Rating    float64         `json:"rating" gorm:"column:services_rating" validate:"gte=1,lte=10"`
	Offerings json.RawMessage `json:"offerings" gorm:"column:services_offerings;type:json"`
}

// CommunityInfo is the community category rating plus its activity list
type CommunityInfo struct {
	Rating     float64         `json:"rating" gorm:"column:community_rating" validate:"gte=1,lte=10"`
	Activities json.RawMessage `json:"activities" gorm:"column:community_activities;type:json"`
}

// Facilities is the shared-infrastructure breakdown of a facility
type Facilities struct {
	SharedSpaces   json.RawMessage `json:"sharedSpaces" gorm:"column:shared_spaces;type:json"`
	SafetyFeatures json.RawMessage `json:"safetyFeatures" gorm:"column:safety_features;type:json"`
	Accessibility  json.RawMessage `json:"accessibility" gorm:"column:accessibility;type:json"`
}

// ContactInfo is the optional facility contact block
type ContactInfo struct {
	Phone   string `json:"phone,omitempty" gorm:"column:contact_phone"`
	Email   string `json:"email,omitempty" gorm:"column:contact_email"`
	Website string `json:"website,omitempty" gorm:"column:contact_website"`
}

// Room is one care-facility unit offering. The overall rating and total
// cost are derived at read time (services package), never stored here.
type Room struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" validate:"required"`
	FacilityName    string          `json:"facilityName" validate:"required"`
	Location        Location        `json:"location" gorm:"embedded"`
	Pricing         Pricing         `json:"pricing" gorm:"embedded"`
	RoomType        string          `json:"roomType" validate:"oneof=assisted_living independent_living memory_care daycare"`
	Occupancy       string          `json:"occupancy" validate:"oneof=single double shared"`
	LengthOfStay    string          `json:"lengthOfStay" validate:"oneof=short medium long"`
	CareLevel       string          `json:"careLevel" validate:"oneof=high medium low"`
	Description     string          `json:"description" validate:"required"`
	MedicalServices json.RawMessage `json:"medicalServices" gorm:"column:medical_services;type:json"`
	Lifestyle       LifestyleInfo   `json:"lifestyle" gorm:"embedded"`
	Medical         MedicalInfo     `json:"medical" gorm:"embedded"`
	Services        ServicesInfo    `json:"services" gorm:"embedded"`
	Community       CommunityInfo   `json:"community" gorm:"embedded"`
	Facilities      Facilities      `json:"facilities" gorm:"embedded"`
	Images          json.RawMessage `json:"images" gorm:"type:json"`
	ContactInfo     ContactInfo     `json:"contactInfo" gorm:"embedded"`
	IsActive        bool            `json:"isActive" gorm:"default:true"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CategoryRatings returns the four sub-category ratings in a fixed order
// (lifestyle, medical, services, community).
func (r *Room) CategoryRatings() [4]float64 {
	return [4]float64{
		r.Lifestyle.Rating,
		r.Medical.Rating,
		r.Services.Rating,
		r.Community.Rating,
	}
}
