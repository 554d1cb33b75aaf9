package services

import (
	"testing"

	"eldercare/models"
)

func TestOverallRatingRoundsToOneDecimal(t *testing.T) {
	room := &models.Room{
		Lifestyle: models.LifestyleInfo{Rating: 8},
		Medical:   models.MedicalInfo{Rating: 9},
		Services:  models.ServicesInfo{Rating: 8},
		Community: models.CommunityInfo{Rating: 8},
	}

	// mean 8.25 rounds to 8.3
	if got := OverallRating(room); got != 8.3 {
		t.Fatalf("OverallRating = %v, want 8.3", got)
	}
}

func TestOverallRatingEqualRatings(t *testing.T) {
	room := &models.Room{
		Lifestyle: models.LifestyleInfo{Rating: 10},
		Medical:   models.MedicalInfo{Rating: 10},
		Services:  models.ServicesInfo{Rating: 10},
		Community: models.CommunityInfo{Rating: 10},
	}

	if got := OverallRating(room); got != 10 {
		t.Fatalf("OverallRating = %v, want 10", got)
	}
}

func TestTotalCostSumsRentAndOneTimeCharges(t *testing.T) {
	admission := 20000
	petty := 25000
	room := &models.Room{
		Pricing: models.Pricing{
			Rent:             70000,
			SecurityDeposit:  250000,
			AdmissionCharge:  &admission,
			PettyCashReserve: &petty,
		},
	}

	// the refundable deposit is excluded
	if got := TotalCost(room); got != 115000 {
		t.Fatalf("TotalCost = %d, want 115000", got)
	}
}

func TestTotalCostWithoutOptionalCharges(t *testing.T) {
	room := &models.Room{
		Pricing: models.Pricing{Rent: 50000, SecurityDeposit: 100000},
	}

	if got := TotalCost(room); got != 50000 {
		t.Fatalf("TotalCost = %d, want 50000", got)
	}
}
