package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"eldercare/config"
	"eldercare/constants"
	"eldercare/dto"
	appErrors "eldercare/errors"
	"eldercare/models"
)

// applyRoomFilters chains the list-query predicates onto db. Every group
// is AND'd; minRating matches when ANY category clears the threshold.
func applyRoomFilters(db *gorm.DB, filter dto.RoomFilter) *gorm.DB {
	db = db.Where("is_active = ?", true)

	if filter.City != "" {
		db = db.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}
	if filter.Area != "" {
		db = db.Where("LOWER(area) LIKE ?", "%"+strings.ToLower(filter.Area)+"%")
	}
	if filter.RoomType != "" {
		db = db.Where("room_type = ?", filter.RoomType)
	}
	if filter.MinRent != nil {
		db = db.Where("rent >= ?", *filter.MinRent)
	}
	if filter.MaxRent != nil {
		db = db.Where("rent <= ?", *filter.MaxRent)
	}
	if filter.MinRating != nil {
		r := *filter.MinRating
		db = db.Where(
			"(lifestyle_rating >= ? OR medical_rating >= ? OR services_rating >= ? OR community_rating >= ?)",
			r, r, r, r,
		)
	}
	if filter.Search != "" {
		q := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Where(
			"(LOWER(name) LIKE ? OR LOWER(facility_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(city) LIKE ? OR LOWER(area) LIKE ?)",
			q, q, q, q, q,
		)
	}

	return db
}

// GetAllRooms returns one page of active rooms matching filter, sorted
// by lifestyle rating descending then rent ascending, plus the total
// match count.
func GetAllRooms(filter dto.RoomFilter) ([]models.Room, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	var total int64
	if err := applyRoomFilters(config.DB.Model(&models.Room{}), filter).Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to count rooms", err)
	}

	var rooms []models.Room
	offset := (filter.Page - 1) * filter.Limit
	err := applyRoomFilters(config.DB.Model(&models.Room{}), filter).
		Order("lifestyle_rating DESC, rent ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to fetch rooms", err)
	}

	return rooms, total, nil
}

// GetRoomStatistics aggregates the full filtered match set, ignoring
// pagination. AverageRent is 0 when nothing matches.
func GetRoomStatistics(filter dto.RoomFilter) (dto.Statistics, error) {
	var stats dto.Statistics

	if err := applyRoomFilters(config.DB.Model(&models.Room{}), filter).Count(&stats.TotalRooms).Error; err != nil {
		return stats, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to count rooms", err)
	}

	err := applyRoomFilters(config.DB.Model(&models.Room{}), filter).
		Select("COALESCE(AVG(rent), 0)").
		Scan(&stats.AverageRent).Error
	if err != nil {
		return stats, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to average rent", err)
	}

	t := float64(constants.TopRatedThreshold)
	err = applyRoomFilters(config.DB.Model(&models.Room{}), filter).
		Where(
			"(lifestyle_rating >= ? OR medical_rating >= ? OR services_rating >= ? OR community_rating >= ?)",
			t, t, t, t,
		).
		Count(&stats.TopRatedRooms).Error
	if err != nil {
		return stats, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to count top rated rooms", err)
	}

	return stats, nil
}

const (
	globalStatsCacheKey = "rooms:stats:global"
	globalStatsCacheTTL = 2 * time.Hour
)

// GetGlobalStatistics serves the unfiltered aggregates from the cache
// when warm, recomputing and re-priming on a miss. Room mutations
// invalidate the key along with the rest of the rooms:* namespace.
func GetGlobalStatistics() (dto.Statistics, error) {
	var cached *dto.Statistics
	if err := GetFromRedis(config.Ctx, config.RedisClient, globalStatsCacheKey, &cached); err == nil && cached != nil {
		return *cached, nil
	}

	stats, err := GetRoomStatistics(dto.RoomFilter{})
	if err != nil {
		return stats, err
	}

	if err := SetToRedis(config.Ctx, config.RedisClient, globalStatsCacheKey, stats, globalStatsCacheTTL); err != nil {
		log.Printf("Failed to cache global statistics: %v", err)
	}

	return stats, nil
}

// WarmGlobalStatistics recomputes the unfiltered aggregates and primes
// the cache, keeping the first list request after an invalidation fast.
func WarmGlobalStatistics() error {
	stats, err := GetRoomStatistics(dto.RoomFilter{})
	if err != nil {
		return err
	}
	return SetToRedis(config.Ctx, config.RedisClient, globalStatsCacheKey, stats, globalStatsCacheTTL)
}

// GetRoomByID loads one active room
func GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := config.DB.Where("id = ? AND is_active = ?", id, true).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrRoomNotFound
	}
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to fetch room", err)
	}
	return &room, nil
}

// CreateRoom persists a new room and mirrors it to the search index
func CreateRoom(room *models.Room) error {
	if err := config.DB.Create(room).Error; err != nil {
		return appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to create room", err)
	}

	go IndexRoom(room)
	go DeleteFromRedis(config.Ctx, config.RedisClient, "rooms:*")

	return nil
}

// UpdateRoom applies the given room fields over an existing record
func UpdateRoom(id uint, updated *models.Room) (*models.Room, error) {
	var room models.Room
	err := config.DB.First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrRoomNotFound
	}
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to fetch room", err)
	}

	updated.ID = room.ID
	updated.CreatedAt = room.CreatedAt
	if err := config.DB.Model(&room).Select("*").Omit("id", "created_at").Updates(updated).Error; err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to update room", err)
	}

	if err := config.DB.First(&room, room.ID).Error; err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to reload room", err)
	}

	go IndexRoom(&room)
	go DeleteFromRedis(config.Ctx, config.RedisClient, "rooms:*")

	return &room, nil
}

// SetRoomStatus toggles the active flag. Inactive rooms drop out of
// every read path but stay in the database.
func SetRoomStatus(id uint, isActive bool) (*models.Room, error) {
	var room models.Room
	err := config.DB.First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrRoomNotFound
	}
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to fetch room", err)
	}

	if err := config.DB.Model(&room).Update("is_active", isActive).Error; err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to update room status", err)
	}

	go DeleteFromRedis(config.Ctx, config.RedisClient, "rooms:*")

	return &room, nil
}

// ListCities returns the distinct active-room cities, for suggestions
func ListCities() ([]string, error) {
	var cities []string
	err := config.DB.Model(&models.Room{}).
		Where("is_active = ?", true).
		Distinct().
		Pluck("city", &cities).Error
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to list cities", err)
	}
	return cities, nil
}
