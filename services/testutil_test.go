package services

import (
	"testing"

	"tyco-hotel-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite db")

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.Room{},
		&models.Reservation{},
	))

	return db
}

func createTestRoom(t *testing.T, db *gorm.DB, name string, price float64) models.Room {
	t.Helper()

	amenities, err := models.EncodeStringList([]string{"Free WiFi"})
	require.NoError(t, err)
	images, err := models.EncodeStringList(nil)
	require.NoError(t, err)

	room := models.Room{
		Name:      name,
		Price:     price,
		Rating:    4.5,
		Amenities: amenities,
		Images:    images,
		Status:    models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}
