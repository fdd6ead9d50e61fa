package services

import (
	"errors"
	"fmt"
	"sort"

	"tyco-hotel-backend/models"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room_not_found")

// Sort keys accepted by the room listing, same values the site's room
// browser uses.
const (
	RoomSortFeatured  = "featured"
	RoomSortPriceLow  = "price-low"
	RoomSortPriceHigh = "price-high"
	RoomSortRating    = "rating"
)

// RoomFilter narrows and orders a room listing. Status is the only filter
// pushed to the store; price range and sorting are applied in memory over
// the fetched set, as the source did.
type RoomFilter struct {
	Status   string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Limit    int
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to load room: %w", err)
	}
	return room, nil
}

// List fetches the whole collection ordered by creation time (optionally
// narrowed by status), then filters and sorts in memory. Sorting is stable
// so rooms with equal keys keep their fetch order.
func (s *RoomService) List(filter RoomFilter) ([]models.Room, error) {
	query := s.DB.Order("created_at ASC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		filtered := make([]models.Room, 0, len(rooms))
		for _, room := range rooms {
			if filter.MinPrice != nil && room.Price < *filter.MinPrice {
				continue
			}
			if filter.MaxPrice != nil && room.Price > *filter.MaxPrice {
				continue
			}
			filtered = append(filtered, room)
		}
		rooms = filtered
	}

	switch filter.Sort {
	case RoomSortPriceLow:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Price < rooms[j].Price })
	case RoomSortPriceHigh:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Price > rooms[j].Price })
	case RoomSortRating:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Rating > rooms[j].Rating })
	}

	if filter.Limit > 0 && len(rooms) > filter.Limit {
		rooms = rooms[:filter.Limit]
	}

	return rooms, nil
}

// Update applies a partial update. Identity and timestamp columns are
// stripped so a stray payload cannot rewrite them.
func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes the room. Reservations referencing it are left as-is;
// their name/price snapshots keep historical bookings meaningful.
func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
