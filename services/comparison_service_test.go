package services

import (
	"errors"
	"fmt"
	"testing"

	"eldercare/config"
	appErrors "eldercare/errors"
	"eldercare/models"
)

func seededIDs(t *testing.T, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		var room models.Room
		if err := config.DB.Where("name = ?", name).First(&room).Error; err != nil {
			t.Fatalf("load %q: %v", name, err)
		}
		ids = append(ids, fmt.Sprintf("%d", room.ID))
	}
	return ids
}

func TestCompareRoomsSizeBounds(t *testing.T) {
	setupTestDB(t)

	if _, err := CompareRooms(nil); !errors.Is(err, appErrors.ErrInvalidComparisonSize) {
		t.Fatalf("err = %v, want ErrInvalidComparisonSize for no ids", err)
	}
	if _, err := CompareRooms([]string{"1"}); !errors.Is(err, appErrors.ErrInvalidComparisonSize) {
		t.Fatalf("err = %v, want ErrInvalidComparisonSize for one id", err)
	}
	if _, err := CompareRooms([]string{"1", "2", "3", "4", "5", "6"}); !errors.Is(err, appErrors.ErrInvalidComparisonSize) {
		t.Fatalf("err = %v, want ErrInvalidComparisonSize for six ids", err)
	}
}

func TestCompareRoomsDuplicateIDsCollapse(t *testing.T) {
	setupTestDB(t)

	ids := seededIDs(t, "NEMA Eldercare")
	ids = append(ids, ids[0])

	// the same id twice resolves to a single room
	if _, err := CompareRooms(ids); !errors.Is(err, appErrors.ErrInsufficientRooms) {
		t.Fatalf("err = %v, want ErrInsufficientRooms for a duplicated id", err)
	}
}

func TestCompareRoomsDropsUnknownAndMalformedIDs(t *testing.T) {
	setupTestDB(t)

	ids := seededIDs(t, "Artha Senior Care - Assisted Living", "Aurum Senior and Assisted Living")
	ids = append(ids, "99999", "not-a-number")

	comparison, err := CompareRooms(ids)
	if err != nil {
		t.Fatalf("CompareRooms: %v", err)
	}
	if len(comparison.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2 after silent drops", len(comparison.Rooms))
	}
	if comparison.Summary.TotalRooms != 2 {
		t.Fatalf("TotalRooms = %d, want 2", comparison.Summary.TotalRooms)
	}
}

func TestCompareRoomsInsufficientAfterDrops(t *testing.T) {
	setupTestDB(t)

	ids := seededIDs(t, "Artha Senior Care - Assisted Living")
	ids = append(ids, "99999")

	if _, err := CompareRooms(ids); !errors.Is(err, appErrors.ErrInsufficientRooms) {
		t.Fatalf("err = %v, want ErrInsufficientRooms", err)
	}
}

func TestCompareRoomsExcludesInactive(t *testing.T) {
	setupTestDB(t)

	ids := seededIDs(t, "Artha Senior Care - Assisted Living", "NEMA Eldercare")
	if err := config.DB.Model(&models.Room{}).
		Where("name = ?", "NEMA Eldercare").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := CompareRooms(ids); !errors.Is(err, appErrors.ErrInsufficientRooms) {
		t.Fatalf("err = %v, want ErrInsufficientRooms when one of two is inactive", err)
	}
}

func TestCompareRoomsSummary(t *testing.T) {
	setupTestDB(t)

	ids := seededIDs(t,
		"Artha Senior Care - Assisted Living",
		"Aurum Senior and Assisted Living",
		"NEMA Eldercare",
	)

	comparison, err := CompareRooms(ids)
	if err != nil {
		t.Fatalf("CompareRooms: %v", err)
	}

	// ordered by lifestyle rating descending
	if comparison.Rooms[0].Name != "NEMA Eldercare" {
		t.Fatalf("rooms[0] = %q, want NEMA Eldercare", comparison.Rooms[0].Name)
	}

	pr := comparison.Summary.PriceRange
	if pr.Min != 70000 || pr.Max != 100000 || pr.Average != 80000 {
		t.Fatalf("PriceRange = %+v, want min 70000 max 100000 average 80000", pr)
	}

	rc := comparison.Summary.RatingComparison
	if len(rc.Lifestyle) != 3 || len(rc.Overall) != 3 {
		t.Fatalf("rating arrays truncated: %d lifestyle, %d overall", len(rc.Lifestyle), len(rc.Overall))
	}
	// NEMA: (10+7+10+10)/4 = 9.25 rounds to 9.3
	if rc.Overall[0].Rating != 9.3 {
		t.Fatalf("overall[0] = %v, want 9.3", rc.Overall[0].Rating)
	}

	// totalCost = rent + admission + petty cash
	if comparison.Rooms[0].TotalCost != 155000 {
		t.Fatalf("TotalCost = %d, want 155000", comparison.Rooms[0].TotalCost)
	}
}

func TestCompareRoomsAverageRoundsHalfUp(t *testing.T) {
	setupTestDB(t)

	a := addRoom(t, func(r *models.Room) { r.Name = "A Wing"; r.Pricing.Rent = 100 })
	b := addRoom(t, func(r *models.Room) { r.Name = "B Wing"; r.Pricing.Rent = 101 })

	comparison, err := CompareRooms([]string{
		fmt.Sprintf("%d", a.ID),
		fmt.Sprintf("%d", b.ID),
	})
	if err != nil {
		t.Fatalf("CompareRooms: %v", err)
	}

	// mean 100.5 rounds away from zero
	if got := comparison.Summary.PriceRange.Average; got != 101 {
		t.Fatalf("Average = %d, want 101", got)
	}
}

func TestParseRoomIDs(t *testing.T) {
	got := ParseRoomIDs([]string{"1", "abc", "0", "-3", "42"})
	if len(got) != 2 || got[0] != 1 || got[1] != 42 {
		t.Fatalf("ParseRoomIDs = %v, want [1 42]", got)
	}
}
