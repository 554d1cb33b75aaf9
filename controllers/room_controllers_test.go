package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"eldercare/config"
	"eldercare/models"
	"eldercare/services"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Room{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rooms := services.SampleRooms()
	if err := db.Create(&rooms).Error; err != nil {
		t.Fatalf("seed rooms: %v", err)
	}

	config.DB = db
	config.RedisClient = nil

	router := gin.New()
	router.GET("/api/rooms", GetAllRooms)
	router.GET("/api/rooms/:id", GetRoomDetail)
	router.POST("/api/rooms/compare", CompareRooms)
	router.GET("/api/rooms/suggest-city", SuggestCity)
	router.POST("/api/rooms/seed", SeedRooms)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, envelope
}

func dataField(t *testing.T, envelope map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := envelope["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data missing from envelope: %v", envelope)
	}
	return data
}

func TestGetAllRoomsEnvelope(t *testing.T) {
	router := setupRouter(t)

	w, envelope := doRequest(t, router, http.MethodGet, "/api/rooms?city=Gurugram&minRating=8", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope["success"] != true {
		t.Fatalf("success = %v", envelope["success"])
	}

	data := dataField(t, envelope)
	rooms, ok := data["rooms"].([]interface{})
	if !ok || len(rooms) != 3 {
		t.Fatalf("rooms = %v", data["rooms"])
	}

	pagination, ok := data["pagination"].(map[string]interface{})
	if !ok {
		t.Fatalf("pagination missing: %v", data)
	}
	if pagination["total"] != float64(3) || pagination["pages"] != float64(1) {
		t.Fatalf("pagination = %v", pagination)
	}
	if pagination["page"] != float64(1) || pagination["limit"] != float64(10) {
		t.Fatalf("pagination defaults = %v", pagination)
	}

	stats, ok := data["statistics"].(map[string]interface{})
	if !ok {
		t.Fatalf("statistics missing: %v", data)
	}
	if stats["totalRooms"] != float64(3) || stats["averageRent"] != float64(80000) {
		t.Fatalf("statistics = %v", stats)
	}

	// NEMA leads on lifestyle and lists at most three images
	first := rooms[0].(map[string]interface{})
	if first["name"] != "NEMA Eldercare" {
		t.Fatalf("first room = %v", first["name"])
	}
	if first["overallRating"] != float64(9.3) {
		t.Fatalf("overallRating = %v, want 9.3", first["overallRating"])
	}
	images := first["images"].([]interface{})
	if len(images) > 3 {
		t.Fatalf("images = %d, want at most 3", len(images))
	}
}

func TestGetAllRoomsCoercesBadPageAndLimit(t *testing.T) {
	router := setupRouter(t)

	w, envelope := doRequest(t, router, http.MethodGet, "/api/rooms?page=abc&limit=xyz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with defaults", w.Code)
	}

	pagination := dataField(t, envelope)["pagination"].(map[string]interface{})
	if pagination["page"] != float64(1) || pagination["limit"] != float64(10) {
		t.Fatalf("pagination = %v, want page 1 limit 10", pagination)
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/rooms?page=-2&limit=0", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for out-of-range page and limit", w.Code)
	}
}

func TestGetAllRoomsRejectsBadRentBounds(t *testing.T) {
	router := setupRouter(t)

	w, envelope := doRequest(t, router, http.MethodGet, "/api/rooms?minRent=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if envelope["success"] != false {
		t.Fatalf("success = %v", envelope["success"])
	}
}

func TestGetRoomDetail(t *testing.T) {
	router := setupRouter(t)

	var artha models.Room
	if err := config.DB.Where("facility_name = ?", "Artha Senior Care").First(&artha).Error; err != nil {
		t.Fatalf("load room: %v", err)
	}

	w, envelope := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/rooms/%d", artha.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	room := dataField(t, envelope)["room"].(map[string]interface{})
	if room["totalCost"] != float64(115000) {
		t.Fatalf("totalCost = %v, want 115000", room["totalCost"])
	}
	// (8+9+8+8)/4 = 8.25 rounds to 8.3
	if room["overallRating"] != float64(8.3) {
		t.Fatalf("overallRating = %v, want 8.3", room["overallRating"])
	}
	if room["lengthOfStay"] != "long" {
		t.Fatalf("lengthOfStay = %v", room["lengthOfStay"])
	}
}

func TestGetRoomDetailErrors(t *testing.T) {
	router := setupRouter(t)

	w, envelope := doRequest(t, router, http.MethodGet, "/api/rooms/99999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if envelope["message"] != "Room not found" {
		t.Fatalf("message = %v", envelope["message"])
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/rooms/not-a-number", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCompareRoomsEndpoint(t *testing.T) {
	router := setupRouter(t)

	var ids []string
	var rooms []models.Room
	if err := config.DB.Order("id").Limit(2).Find(&rooms).Error; err != nil {
		t.Fatalf("load rooms: %v", err)
	}
	for _, r := range rooms {
		ids = append(ids, fmt.Sprintf("%d", r.ID))
	}

	w, envelope := doRequest(t, router, http.MethodPost, "/api/rooms/compare",
		map[string]interface{}{"roomIds": ids})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", w.Code, envelope)
	}

	data := dataField(t, envelope)
	summary := data["summary"].(map[string]interface{})
	if summary["totalRooms"] != float64(2) {
		t.Fatalf("totalRooms = %v, want 2", summary["totalRooms"])
	}
	ratings := summary["ratingComparison"].(map[string]interface{})
	if len(ratings["overall"].([]interface{})) != 2 {
		t.Fatalf("overall ratings = %v", ratings["overall"])
	}
}

func TestCompareRoomsEndpointSizeErrors(t *testing.T) {
	router := setupRouter(t)

	w, envelope := doRequest(t, router, http.MethodPost, "/api/rooms/compare",
		map[string]interface{}{"roomIds": []string{"1"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if envelope["message"] != "At least 2 room IDs are required for comparison" {
		t.Fatalf("message = %v", envelope["message"])
	}

	w, envelope = doRequest(t, router, http.MethodPost, "/api/rooms/compare",
		map[string]interface{}{"roomIds": []string{"1", "2", "3", "4", "5", "6"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if envelope["message"] != "Cannot compare more than 5 rooms at once" {
		t.Fatalf("message = %v", envelope["message"])
	}
}

func TestSeedRoomsNeedsNoAuth(t *testing.T) {
	router := setupRouter(t)

	if err := config.DB.Exec("DELETE FROM rooms").Error; err != nil {
		t.Fatalf("clear rooms: %v", err)
	}

	w, envelope := doRequest(t, router, http.MethodPost, "/api/rooms/seed", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 without credentials", w.Code)
	}
	if dataField(t, envelope)["count"] != float64(3) {
		t.Fatalf("count = %v, want 3", dataField(t, envelope)["count"])
	}

	var total int64
	if err := config.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		t.Fatalf("count rooms: %v", err)
	}
	if total != 3 {
		t.Fatalf("rooms = %d, want 3 after reseed", total)
	}
}

func TestSuggestCityEndpoint(t *testing.T) {
	router := setupRouter(t)

	w, envelope := doRequest(t, router, http.MethodGet, "/api/rooms/suggest-city?q=Gurugrm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := dataField(t, envelope)
	if data["didYouMean"] != "Gurugram" {
		t.Fatalf("didYouMean = %v, want Gurugram", data["didYouMean"])
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/rooms/suggest-city", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
