package services

import (
	"math"
	"strconv"

	"eldercare/config"
	"eldercare/constants"
	"eldercare/dto"
	appErrors "eldercare/errors"
	"eldercare/models"
)

// ParseRoomIDs converts the raw id strings to numeric ids. Malformed
// entries are dropped, not rejected, the same way unknown ids are.
func ParseRoomIDs(raw []string) []uint {
	ids := make([]uint, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// CompareRooms resolves the requested ids against active rooms and
// builds the side-by-side payload. The request must carry 2 to 5 ids;
// after silent drops at least 2 rooms must remain.
func CompareRooms(rawIDs []string) (*dto.Comparison, error) {
	if len(rawIDs) < constants.CompareMinRooms || len(rawIDs) > constants.CompareMaxRooms {
		return nil, appErrors.ErrInvalidComparisonSize
	}

	ids := ParseRoomIDs(rawIDs)

	var rooms []models.Room
	err := config.DB.
		Where("id IN ? AND is_active = ?", ids, true).
		Order("lifestyle_rating DESC, rent ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to fetch rooms for comparison", err)
	}

	if len(rooms) < constants.CompareMinRooms {
		return nil, appErrors.ErrInsufficientRooms
	}

	comparison := &dto.Comparison{
		Rooms: make([]dto.CompareRoom, 0, len(rooms)),
	}

	minRent, maxRent, sumRent := rooms[0].Pricing.Rent, rooms[0].Pricing.Rent, 0
	ratings := dto.RatingComparison{
		Lifestyle: make([]dto.RatingEntry, 0, len(rooms)),
		Medical:   make([]dto.RatingEntry, 0, len(rooms)),
		Services:  make([]dto.RatingEntry, 0, len(rooms)),
		Community: make([]dto.RatingEntry, 0, len(rooms)),
		Overall:   make([]dto.RatingEntry, 0, len(rooms)),
	}

	for i := range rooms {
		room := &rooms[i]
		overall := OverallRating(room)

		comparison.Rooms = append(comparison.Rooms, dto.CompareRoom{
			ID:              room.ID,
			Name:            room.Name,
			FacilityName:    room.FacilityName,
			Location:        room.Location,
			Pricing:         room.Pricing,
			RoomType:        room.RoomType,
			Occupancy:       room.Occupancy,
			CareLevel:       room.CareLevel,
			Lifestyle:       room.Lifestyle,
			Medical:         room.Medical,
			Services:        room.Services,
			Community:       room.Community,
			OverallRating:   overall,
			TotalCost:       TotalCost(room),
			Facilities:      room.Facilities,
			MedicalServices: room.MedicalServices,
		})

		rent := room.Pricing.Rent
		if rent < minRent {
			minRent = rent
		}
		if rent > maxRent {
			maxRent = rent
		}
		sumRent += rent

		ratings.Lifestyle = append(ratings.Lifestyle, dto.RatingEntry{ID: room.ID, Name: room.Name, Rating: room.Lifestyle.Rating})
		ratings.Medical = append(ratings.Medical, dto.RatingEntry{ID: room.ID, Name: room.Name, Rating: room.Medical.Rating})
		ratings.Services = append(ratings.Services, dto.RatingEntry{ID: room.ID, Name: room.Name, Rating: room.Services.Rating})
		ratings.Community = append(ratings.Community, dto.RatingEntry{ID: room.ID, Name: room.Name, Rating: room.Community.Rating})
		ratings.Overall = append(ratings.Overall, dto.RatingEntry{ID: room.ID, Name: room.Name, Rating: overall})
	}

	comparison.Summary = dto.ComparisonSummary{
		TotalRooms: len(rooms),
		PriceRange: dto.PriceRange{
			Min:     minRent,
			Max:     maxRent,
			Average: int(math.Round(float64(sumRent) / float64(len(rooms)))),
		},
		RatingComparison: ratings,
	}

	return comparison, nil
}
