package services

import (
	"math"

	"eldercare/models"
)

// OverallRating averages the four category ratings and rounds to one
// decimal place.
func OverallRating(room *models.Room) float64 {
	ratings := room.CategoryRatings()
	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	mean := sum / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// TotalCost sums rent with the optional one-time charges. The security
// deposit is refundable and stays out of the total.
func TotalCost(room *models.Room) int {
	total := room.Pricing.Rent
	if room.Pricing.AdmissionCharge != nil {
		total += *room.Pricing.AdmissionCharge
	}
	if room.Pricing.PettyCashReserve != nil {
		total += *room.Pricing.PettyCashReserve
	}
	return total
}
