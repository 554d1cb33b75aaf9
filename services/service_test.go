package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eldercare/config"
	"eldercare/models"
)

// setupTestDB points the shared handle at a fresh in-memory database
// seeded with the sample rooms.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.Room{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rooms := SampleRooms()
	if err := db.Create(&rooms).Error; err != nil {
		t.Fatalf("seed rooms: %v", err)
	}

	config.DB = db
	config.RedisClient = nil
}

func addRoom(t *testing.T, mutate func(*models.Room)) models.Room {
	t.Helper()

	room := SampleRooms()[0]
	room.ID = 0
	if mutate != nil {
		mutate(&room)
	}
	wantActive := room.IsActive
	if err := config.DB.Create(&room).Error; err != nil {
		t.Fatalf("insert room: %v", err)
	}
	// the column default overrides a zero-value flag on insert
	if !wantActive {
		if err := config.DB.Model(&room).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate room: %v", err)
		}
		room.IsActive = false
	}
	return room
}
