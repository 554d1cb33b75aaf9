package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eldercare/config"
	"eldercare/dto"
	appErrors "eldercare/errors"
	"eldercare/models"
	"eldercare/response"
	"eldercare/services"
	"eldercare/validator"
)

const roomListCacheTTL = 10 * time.Minute

// listImages decodes the stored image list and keeps the first max
func listImages(raw json.RawMessage, max int) []string {
	var images []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &images); err != nil {
			return []string{}
		}
	}
	if images == nil {
		images = []string{}
	}
	if len(images) > max {
		images = images[:max]
	}
	return images
}

func buildRoomSummary(room *models.Room) dto.RoomSummary {
	return dto.RoomSummary{
		ID:            room.ID,
		Name:          room.Name,
		FacilityName:  room.FacilityName,
		Location:      room.Location,
		Pricing:       room.Pricing,
		RoomType:      room.RoomType,
		Occupancy:     room.Occupancy,
		CareLevel:     room.CareLevel,
		Lifestyle:     room.Lifestyle,
		Medical:       room.Medical,
		Services:      room.Services,
		Community:     room.Community,
		OverallRating: services.OverallRating(room),
		Images:        listImages(room.Images, 3),
	}
}

func buildRoomDetail(room *models.Room) dto.RoomDetail {
	return dto.RoomDetail{
		ID:              room.ID,
		Name:            room.Name,
		FacilityName:    room.FacilityName,
		Location:        room.Location,
		Pricing:         room.Pricing,
		RoomType:        room.RoomType,
		Occupancy:       room.Occupancy,
		LengthOfStay:    room.LengthOfStay,
		CareLevel:       room.CareLevel,
		Description:     room.Description,
		MedicalServices: room.MedicalServices,
		Lifestyle:       room.Lifestyle,
		Medical:         room.Medical,
		Services:        room.Services,
		Community:       room.Community,
		Facilities:      room.Facilities,
		Images:          room.Images,
		ContactInfo:     room.ContactInfo,
		OverallRating:   services.OverallRating(room),
		TotalCost:       services.TotalCost(room),
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
	}
}

// parseRoomFilter reads the list-query parameters. Non-numeric page
// and limit fall back to the defaults; malformed rent and rating
// bounds reject the request.
func parseRoomFilter(c *gin.Context) (dto.RoomFilter, bool) {
	filter := dto.RoomFilter{Page: 1, Limit: 10}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page >= 1 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit >= 1 {
		filter.Limit = limit
	}

	filter.City = c.Query("city")
	filter.Area = c.Query("area")
	filter.RoomType = c.Query("roomType")
	filter.Search = c.Query("search")

	if v := c.Query("minRent"); v != "" {
		minRent, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "minRent must be an integer")
			return filter, false
		}
		filter.MinRent = &minRent
	}
	if v := c.Query("maxRent"); v != "" {
		maxRent, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "maxRent must be an integer")
			return filter, false
		}
		filter.MaxRent = &maxRent
	}
	if v := c.Query("minRating"); v != "" {
		minRating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.BadRequest(c, "minRating must be a number")
			return filter, false
		}
		filter.MinRating = &minRating
	}

	return filter, true
}

type roomListPayload struct {
	Rooms      []dto.RoomSummary `json:"rooms"`
	Total      int64             `json:"total"`
	Statistics dto.Statistics    `json:"statistics"`
}

// GetAllRooms lists active rooms with filters, pagination and the
// aggregate statistics block.
func GetAllRooms(c *gin.Context) {
	filter, ok := parseRoomFilter(c)
	if !ok {
		return
	}

	cacheKey := "rooms:list:" + c.Request.URL.RawQuery

	var cached roomListPayload
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && cached.Rooms != nil {
		response.SuccessWithPagination(c, gin.H{
			"rooms":      cached.Rooms,
			"statistics": cached.Statistics,
		}, filter.Page, filter.Limit, cached.Total)
		return
	}

	rooms, total, err := services.GetAllRooms(filter)
	if err != nil {
		log.Printf("Failed to list rooms: %v", err)
		response.ServerError(c)
		return
	}

	stats, err := services.GetGlobalStatistics()
	if err != nil {
		log.Printf("Failed to compute room statistics: %v", err)
		response.ServerError(c)
		return
	}

	summaries := make([]dto.RoomSummary, 0, len(rooms))
	for i := range rooms {
		summaries = append(summaries, buildRoomSummary(&rooms[i]))
	}

	payload := roomListPayload{Rooms: summaries, Total: total, Statistics: stats}
	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, payload, roomListCacheTTL); err != nil {
		log.Printf("Failed to cache room list: %v", err)
	}

	response.SuccessWithPagination(c, gin.H{
		"rooms":      summaries,
		"statistics": stats,
	}, filter.Page, filter.Limit, total)
}

// GetRoomDetail returns one active room with its derived fields
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Room ID is required")
		return
	}

	room, err := services.GetRoomByID(uint(id))
	if errors.Is(err, appErrors.ErrRoomNotFound) {
		response.NotFound(c, "Room not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch room %d: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"room": buildRoomDetail(room)})
}

// CompareRooms builds a side-by-side comparison of 2 to 5 rooms
func CompareRooms(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "At least 2 room IDs are required for comparison")
		return
	}

	if len(req.RoomIDs) < 2 {
		response.BadRequest(c, "At least 2 room IDs are required for comparison")
		return
	}
	if len(req.RoomIDs) > 5 {
		response.BadRequest(c, "Cannot compare more than 5 rooms at once")
		return
	}

	comparison, err := services.CompareRooms(req.RoomIDs)
	if errors.Is(err, appErrors.ErrInsufficientRooms) {
		response.BadRequest(c, "At least 2 valid rooms are required for comparison")
		return
	}
	if errors.Is(err, appErrors.ErrInvalidComparisonSize) {
		response.BadRequest(c, "At least 2 room IDs are required for comparison")
		return
	}
	if err != nil {
		log.Printf("Failed to compare rooms: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, comparison)
}

// SearchRooms serves full-text search from the mirror when available
// and falls back to the database LIKE search otherwise.
func SearchRooms(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	if services.SearchEnabled() {
		ids, err := services.SearchRoomIDs(query, limit)
		if err == nil {
			var rooms []models.Room
			if len(ids) > 0 {
				if dbErr := config.DB.Where("id IN ? AND is_active = ?", ids, true).Find(&rooms).Error; dbErr != nil {
					log.Printf("Failed to load search results: %v", dbErr)
					response.ServerError(c)
					return
				}
			}
			summaries := make([]dto.RoomSummary, 0, len(rooms))
			for i := range rooms {
				summaries = append(summaries, buildRoomSummary(&rooms[i]))
			}
			response.Success(c, gin.H{"rooms": summaries})
			return
		}
		log.Printf("Search mirror failed, falling back to database: %v", err)
	}

	rooms, _, err := services.GetAllRooms(dto.RoomFilter{Search: query, Limit: limit, Page: 1})
	if err != nil {
		log.Printf("Failed to search rooms: %v", err)
		response.ServerError(c)
		return
	}

	summaries := make([]dto.RoomSummary, 0, len(rooms))
	for i := range rooms {
		summaries = append(summaries, buildRoomSummary(&rooms[i]))
	}
	response.Success(c, gin.H{"rooms": summaries})
}

// SuggestCity proposes a close city name for a likely typo
func SuggestCity(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	cities, err := services.ListCities()
	if err != nil {
		log.Printf("Failed to list cities: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, dto.CitySuggestion{
		Query:      query,
		DidYouMean: services.SuggestCity(query, cities),
	})
}

// CreateRoom adds a room listing (admin only)
func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		response.BadRequest(c, "Invalid room payload")
		return
	}

	if err := validator.ValidateRoom(&room); err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "room payload is invalid")
		return
	}

	room.ID = 0
	room.IsActive = true
	if err := services.CreateRoom(&room); err != nil {
		log.Printf("Failed to create room: %v", err)
		response.ServerError(c)
		return
	}

	response.Created(c, "Room created successfully", gin.H{"room": buildRoomDetail(&room)})
}

// UpdateRoom replaces the fields of an existing room (admin only)
func UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Room ID is required")
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		response.BadRequest(c, "Invalid room payload")
		return
	}

	if err := validator.ValidateRoom(&room); err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "room payload is invalid")
		return
	}

	updated, err := services.UpdateRoom(uint(id), &room)
	if errors.Is(err, appErrors.ErrRoomNotFound) {
		response.NotFound(c, "Room not found")
		return
	}
	if err != nil {
		log.Printf("Failed to update room %d: %v", id, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Room updated successfully", gin.H{"room": buildRoomDetail(updated)})
}

// ChangeRoomStatus toggles a room's visibility (admin only)
func ChangeRoomStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Room ID is required")
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.BadRequest(c, "isActive is required")
		return
	}

	room, err := services.SetRoomStatus(uint(id), *req.IsActive)
	if errors.Is(err, appErrors.ErrRoomNotFound) {
		response.NotFound(c, "Room not found")
		return
	}
	if err != nil {
		log.Printf("Failed to change room %d status: %v", id, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Room status updated", gin.H{"room": buildRoomDetail(room)})
}

// SeedRooms loads the sample data set, replacing existing rooms
func SeedRooms(c *gin.Context) {
	count, err := services.SeedRooms()
	if err != nil {
		log.Printf("Failed to seed rooms: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Sample rooms seeded successfully", gin.H{"count": count})
}
