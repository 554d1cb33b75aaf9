package services

import (
	"errors"
	"testing"

	"eldercare/config"
	"eldercare/dto"
	appErrors "eldercare/errors"
	"eldercare/models"
)

func intp(v int) *int { return &v }
func floatp(v float64) *float64 { return &v }

func roomNames(rooms []models.Room) []string {
	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	return names
}

func TestGetAllRoomsDefaultOrdering(t *testing.T) {
	setupTestDB(t)

	rooms, total, err := GetAllRooms(dto.RoomFilter{})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}

	// lifestyle rating descending: NEMA 10, Aurum 9, Artha 8
	want := []string{"NEMA Eldercare", "Aurum Senior and Assisted Living", "Artha Senior Care - Assisted Living"}
	got := roomNames(rooms)
	if len(got) != len(want) {
		t.Fatalf("got %d rooms, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rooms[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetAllRoomsTieBreaksOnRentAscending(t *testing.T) {
	setupTestDB(t)

	cheaper := addRoom(t, func(r *models.Room) {
		r.Name = "Budget Wing"
		r.Lifestyle.Rating = 10
		r.Pricing.Rent = 50000
	})

	rooms, _, err := GetAllRooms(dto.RoomFilter{})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}

	// both rate lifestyle 10; the cheaper room comes first
	if rooms[0].Name != cheaper.Name {
		t.Fatalf("rooms[0] = %q, want %q", rooms[0].Name, cheaper.Name)
	}
	if rooms[1].Name != "NEMA Eldercare" {
		t.Fatalf("rooms[1] = %q, want NEMA Eldercare", rooms[1].Name)
	}
}

func TestGetAllRoomsCityFilterIsCaseInsensitiveSubstring(t *testing.T) {
	setupTestDB(t)

	rooms, total, err := GetAllRooms(dto.RoomFilter{City: "guru"})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 3 || len(rooms) != 3 {
		t.Fatalf("total = %d, len = %d, want 3 and 3", total, len(rooms))
	}

	_, total, err = GetAllRooms(dto.RoomFilter{City: "Mumbai"})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}

func TestGetAllRoomsRentRange(t *testing.T) {
	setupTestDB(t)

	rooms, total, err := GetAllRooms(dto.RoomFilter{MinRent: intp(70000), MaxRent: intp(70000)})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2 (bounds are inclusive)", total)
	}
	for _, r := range rooms {
		if r.Pricing.Rent != 70000 {
			t.Fatalf("room %q rent = %d, want 70000", r.Name, r.Pricing.Rent)
		}
	}
}

func TestGetAllRoomsMinRatingMatchesAnyCategory(t *testing.T) {
	setupTestDB(t)

	// NEMA rates medical 7 but lifestyle 10, so a 9 threshold keeps it
	rooms, total, err := GetAllRooms(dto.RoomFilter{MinRating: floatp(9)})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3: one high category is enough", total)
	}

	names := roomNames(rooms)
	found := false
	for _, n := range names {
		if n == "NEMA Eldercare" {
			found = true
		}
	}
	if !found {
		t.Fatalf("NEMA Eldercare missing from %v", names)
	}
}

func TestGetAllRoomsSearchSpansFields(t *testing.T) {
	setupTestDB(t)

	_, total, err := GetAllRooms(dto.RoomFilter{Search: "memory care"})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	// only the Artha description mentions memory care
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}

	_, total, err = GetAllRooms(dto.RoomFilter{Search: "GURUGRAM"})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
}

func TestGetAllRoomsCombinedCityAndMinRating(t *testing.T) {
	setupTestDB(t)

	rooms, total, err := GetAllRooms(dto.RoomFilter{City: "Gurugram", MinRating: floatp(8)})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if rooms[0].Name != "NEMA Eldercare" {
		t.Fatalf("rooms[0] = %q, want NEMA Eldercare", rooms[0].Name)
	}
}

func TestGetAllRoomsExcludesInactive(t *testing.T) {
	setupTestDB(t)

	if err := config.DB.Model(&models.Room{}).
		Where("name = ?", "NEMA Eldercare").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, total, err := GetAllRooms(dto.RoomFilter{})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
}

func TestGetAllRoomsPagination(t *testing.T) {
	setupTestDB(t)

	rooms, total, err := GetAllRooms(dto.RoomFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("GetAllRooms: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(rooms) != 1 {
		t.Fatalf("len = %d, want 1 on the last page", len(rooms))
	}
	if rooms[0].Name != "Artha Senior Care - Assisted Living" {
		t.Fatalf("rooms[0] = %q", rooms[0].Name)
	}
}

func TestGetRoomStatistics(t *testing.T) {
	setupTestDB(t)

	stats, err := GetRoomStatistics(dto.RoomFilter{})
	if err != nil {
		t.Fatalf("GetRoomStatistics: %v", err)
	}
	if stats.TotalRooms != 3 {
		t.Fatalf("TotalRooms = %d, want 3", stats.TotalRooms)
	}
	if stats.AverageRent != 80000 {
		t.Fatalf("AverageRent = %v, want 80000", stats.AverageRent)
	}
	// every sample room has at least one category at 8 or above
	if stats.TopRatedRooms != 3 {
		t.Fatalf("TopRatedRooms = %d, want 3", stats.TopRatedRooms)
	}
}

func TestGetGlobalStatistics(t *testing.T) {
	setupTestDB(t)

	stats, err := GetGlobalStatistics()
	if err != nil {
		t.Fatalf("GetGlobalStatistics: %v", err)
	}
	if stats.TotalRooms != 3 || stats.AverageRent != 80000 {
		t.Fatalf("stats = %+v, want 3 rooms averaging 80000", stats)
	}

	// without a cache the call recomputes every time
	if err := config.DB.Exec("DELETE FROM rooms").Error; err != nil {
		t.Fatalf("clear rooms: %v", err)
	}
	stats, err = GetGlobalStatistics()
	if err != nil {
		t.Fatalf("GetGlobalStatistics: %v", err)
	}
	if stats.TotalRooms != 0 {
		t.Fatalf("TotalRooms = %d, want 0 after clearing", stats.TotalRooms)
	}
}

func TestGetRoomStatisticsEmptySet(t *testing.T) {
	setupTestDB(t)

	stats, err := GetRoomStatistics(dto.RoomFilter{City: "Mumbai"})
	if err != nil {
		t.Fatalf("GetRoomStatistics: %v", err)
	}
	if stats.TotalRooms != 0 {
		t.Fatalf("TotalRooms = %d, want 0", stats.TotalRooms)
	}
	if stats.AverageRent != 0 {
		t.Fatalf("AverageRent = %v, want 0 when nothing matches", stats.AverageRent)
	}
}

func TestGetRoomByID(t *testing.T) {
	setupTestDB(t)

	var seeded models.Room
	if err := config.DB.Where("name = ?", "NEMA Eldercare").First(&seeded).Error; err != nil {
		t.Fatalf("load seeded room: %v", err)
	}

	room, err := GetRoomByID(seeded.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if room.FacilityName != "NEMA Eldercare" {
		t.Fatalf("FacilityName = %q", room.FacilityName)
	}

	if _, err := GetRoomByID(99999); !errors.Is(err, appErrors.ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestGetRoomByIDHidesInactive(t *testing.T) {
	setupTestDB(t)

	hidden := addRoom(t, func(r *models.Room) {
		r.Name = "Closed Wing"
		r.IsActive = false
	})

	if _, err := GetRoomByID(hidden.ID); !errors.Is(err, appErrors.ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound for inactive room", err)
	}
}

func TestSetRoomStatus(t *testing.T) {
	setupTestDB(t)

	var seeded models.Room
	if err := config.DB.Where("name = ?", "NEMA Eldercare").First(&seeded).Error; err != nil {
		t.Fatalf("load seeded room: %v", err)
	}

	if _, err := SetRoomStatus(seeded.ID, false); err != nil {
		t.Fatalf("SetRoomStatus: %v", err)
	}
	if _, err := GetRoomByID(seeded.ID); !errors.Is(err, appErrors.ErrRoomNotFound) {
		t.Fatalf("deactivated room still visible: %v", err)
	}

	if _, err := SetRoomStatus(seeded.ID, true); err != nil {
		t.Fatalf("SetRoomStatus: %v", err)
	}
	if _, err := GetRoomByID(seeded.ID); err != nil {
		t.Fatalf("reactivated room not visible: %v", err)
	}
}

func TestListCities(t *testing.T) {
	setupTestDB(t)

	addRoom(t, func(r *models.Room) {
		r.Name = "Pune Annex"
		r.Location.City = "Pune"
	})

	cities, err := ListCities()
	if err != nil {
		t.Fatalf("ListCities: %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("cities = %v, want Gurugram and Pune", cities)
	}
}
