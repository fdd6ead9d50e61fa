package services

import (
	"fmt"

	"tyco-hotel-backend/models"

	"gorm.io/gorm"
)

// DashboardStats backs the admin landing page: reservation counts per
// status, room counts per status, and revenue over non-cancelled bookings.
type DashboardStats struct {
	TotalReservations int64            `json:"totalReservations"`
	ByStatus          map[string]int64 `json:"byStatus"`
	Revenue           float64          `json:"revenue"`

	TotalRooms  int64            `json:"totalRooms"`
	RoomsByStat map[string]int64 `json:"roomsByStatus"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) Dashboard() (DashboardStats, error) {
	stats := DashboardStats{
		ByStatus:    map[string]int64{},
		RoomsByStat: map[string]int64{},
	}

	if err := s.DB.Model(&models.Reservation{}).Count(&stats.TotalReservations).Error; err != nil {
		return stats, fmt.Errorf("failed to count reservations: %w", err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}

	var reservationCounts []statusCount
	if err := s.DB.Model(&models.Reservation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&reservationCounts).Error; err != nil {
		return stats, fmt.Errorf("failed to group reservations: %w", err)
	}
	for _, row := range reservationCounts {
		stats.ByStatus[row.Status] = row.Count
	}

	// Revenue excludes cancelled bookings, same as the admin overview.
	if err := s.DB.Model(&models.Reservation{}).
		Where("status <> ?", models.ReservationStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Row().Scan(&stats.Revenue); err != nil {
		return stats, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return stats, fmt.Errorf("failed to count rooms: %w", err)
	}

	var roomCounts []statusCount
	if err := s.DB.Model(&models.Room{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&roomCounts).Error; err != nil {
		return stats, fmt.Errorf("failed to group rooms: %w", err)
	}
	for _, row := range roomCounts {
		stats.RoomsByStat[row.Status] = row.Count
	}

	return stats, nil
}
