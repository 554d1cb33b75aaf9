package dto

import (
	"encoding/json"
	"time"

	"eldercare/models"
)

// RoomFilter is the typed form of the list-query parameters. Groups are
// AND'd together; search and minRating expand to OR groups internally.
type RoomFilter struct {
	Page      int
	Limit     int
	City      string
	Area      string
	RoomType  string
	MinRent   *int
	MaxRent   *int
	MinRating *float64
	Search    string
}

// RoomSummary is the shape of one room in list responses
type RoomSummary struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	FacilityName  string               `json:"facilityName"`
	Location      models.Location      `json:"location"`
	Pricing       models.Pricing       `json:"pricing"`
	RoomType      string               `json:"roomType"`
	Occupancy     string               `json:"occupancy"`
	CareLevel     string               `json:"careLevel"`
	Lifestyle     models.LifestyleInfo `json:"lifestyle"`
	Medical       models.MedicalInfo   `json:"medical"`
	Services      models.ServicesInfo  `json:"services"`
	Community     models.CommunityInfo `json:"community"`
	OverallRating float64              `json:"overallRating"`
	Images        []string             `json:"images"`
}

// RoomDetail is the full room payload with the derived fields attached
type RoomDetail struct {
	ID              uint                 `json:"id"`
	Name            string               `json:"name"`
	FacilityName    string               `json:"facilityName"`
	Location        models.Location      `json:"location"`
	Pricing         models.Pricing       `json:"pricing"`
	RoomType        string               `json:"roomType"`
	Occupancy       string               `json:"occupancy"`
	LengthOfStay    string               `json:"lengthOfStay"`
	CareLevel       string               `json:"careLevel"`
	Description     string               `json:"description"`
	MedicalServices json.RawMessage      `json:"medicalServices"`
	Lifestyle       models.LifestyleInfo `json:"lifestyle"`
	Medical         models.MedicalInfo   `json:"medical"`
	Services        models.ServicesInfo  `json:"services"`
	Community       models.CommunityInfo `json:"community"`
	Facilities      models.Facilities    `json:"facilities"`
	Images          json.RawMessage      `json:"images"`
	ContactInfo     models.ContactInfo   `json:"contactInfo"`
	OverallRating   float64              `json:"overallRating"`
	TotalCost       int                  `json:"totalCost"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// CompareRequest is the body of POST /api/rooms/compare
type CompareRequest struct {
	RoomIDs []string `json:"roomIds"`
}

// CompareRoom is the shape of one room inside a comparison payload
type CompareRoom struct {
	ID              uint                 `json:"id"`
	Name            string               `json:"name"`
	FacilityName    string               `json:"facilityName"`
	Location        models.Location      `json:"location"`
	Pricing         models.Pricing       `json:"pricing"`
	RoomType        string               `json:"roomType"`
	Occupancy       string               `json:"occupancy"`
	CareLevel       string               `json:"careLevel"`
	Lifestyle       models.LifestyleInfo `json:"lifestyle"`
	Medical         models.MedicalInfo   `json:"medical"`
	Services        models.ServicesInfo  `json:"services"`
	Community       models.CommunityInfo `json:"community"`
	OverallRating   float64              `json:"overallRating"`
	TotalCost       int                  `json:"totalCost"`
	Facilities      models.Facilities    `json:"facilities"`
	MedicalServices json.RawMessage      `json:"medicalServices"`
}

// RatingEntry is one room's score for a single category
type RatingEntry struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// PriceRange summarizes rent (not total cost) across compared rooms
type PriceRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Average int `json:"average"`
}

// RatingComparison carries the per-category score arrays, each in the
// same resolved-set order
type RatingComparison struct {
	Lifestyle []RatingEntry `json:"lifestyle"`
	Medical   []RatingEntry `json:"medical"`
	Services  []RatingEntry `json:"services"`
	Community []RatingEntry `json:"community"`
	Overall   []RatingEntry `json:"overall"`
}

// ComparisonSummary aggregates the resolved comparison set
type ComparisonSummary struct {
	TotalRooms       int              `json:"totalRooms"`
	PriceRange       PriceRange       `json:"priceRange"`
	RatingComparison RatingComparison `json:"ratingComparison"`
}

// Comparison is the full side-by-side payload
type Comparison struct {
	Rooms   []CompareRoom     `json:"rooms"`
	Summary ComparisonSummary `json:"summary"`
}

// Statistics is the aggregate block attached to list responses
type Statistics struct {
	TotalRooms    int64   `json:"totalRooms"`
	AverageRent   float64 `json:"averageRent"`
	TopRatedRooms int64   `json:"topRatedRooms"`
}

// RoomStatusRequest toggles the active flag of a room
type RoomStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// CitySuggestion is the fuzzy city-match payload
type CitySuggestion struct {
	Query      string `json:"query"`
	DidYouMean string `json:"didYouMean,omitempty"`
}
