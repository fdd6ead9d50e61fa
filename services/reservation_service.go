package services

import (
	"errors"
	"fmt"
	"strings"

	"tyco-hotel-backend/models"
	"tyco-hotel-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrStayNotBookable     = errors.New("stay_not_bookable")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrInvalidTransition   = errors.New("invalid_status_transition")
	ErrMissingGuestInfo    = errors.New("missing_guest_info")
	ErrInvalidGuestCount   = errors.New("invalid_guest_count")
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// CreateReservationInput carries everything the booking form submits. Room
// name and nightly rate are NOT part of the input: they are snapshotted from
// the room record here so later room edits never touch this reservation.
type CreateReservationInput struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	RoomID          uint
	CheckIn         string
	CheckOut        string
	NumberOfGuests  int
	SpecialRequests string
}

// UpdateReservationInput edits the mutable details of a reservation. Nil
// fields are left unchanged. Changing either date recomputes nights and
// total from the stored rate snapshot.
type UpdateReservationInput struct {
	CheckIn         *string
	CheckOut        *string
	NumberOfGuests  *int
	SpecialRequests *string
}

func (s *ReservationService) Create(input CreateReservationInput) (models.Reservation, error) {
	var reservation models.Reservation

	if strings.TrimSpace(input.GuestName) == "" ||
		strings.TrimSpace(input.GuestEmail) == "" ||
		strings.TrimSpace(input.GuestPhone) == "" {
		return reservation, ErrMissingGuestInfo
	}
	if input.NumberOfGuests <= 0 {
		return reservation, ErrInvalidGuestCount
	}

	nights, err := utils.CalculateNightsFromStrings(input.CheckIn, input.CheckOut)
	if err != nil {
		return reservation, err
	}
	if nights == 0 {
		return reservation, ErrStayNotBookable
	}

	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation, ErrRoomNotFound
		}
		return reservation, fmt.Errorf("failed to load room: %w", err)
	}

	reservation = models.Reservation{
		GuestName:       strings.TrimSpace(input.GuestName),
		GuestEmail:      strings.TrimSpace(input.GuestEmail),
		GuestPhone:      strings.TrimSpace(input.GuestPhone),
		RoomID:          room.ID,
		RoomName:        room.Name,
		PricePerNight:   room.Price,
		CheckIn:         input.CheckIn,
		CheckOut:        input.CheckOut,
		NumberOfGuests:  input.NumberOfGuests,
		NumberOfNights:  nights,
		TotalPrice:      utils.CalculateTotalPrice(room.Price, nights),
		SpecialRequests: input.SpecialRequests,
		Status:          models.ReservationStatusPending,
	}

	if err := s.DB.Create(&reservation).Error; err != nil {
		return reservation, fmt.Errorf("failed to create reservation: %w", err)
	}
	return reservation, nil
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation, ErrReservationNotFound
		}
		return reservation, fmt.Errorf("failed to load reservation: %w", err)
	}
	return reservation, nil
}

// List returns reservations newest-first, optionally narrowed by status.
func (s *ReservationService) List(status string) ([]models.Reservation, error) {
	query := s.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// UpdateDetails edits dates, guest count, and special requests. Nights and
// total price are always recomputed from the stored PricePerNight snapshot,
// never re-read from the room.
func (s *ReservationService) UpdateDetails(id uint, input UpdateReservationInput) (models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return reservation, err
	}

	checkIn := reservation.CheckIn
	checkOut := reservation.CheckOut
	if input.CheckIn != nil {
		checkIn = *input.CheckIn
	}
	if input.CheckOut != nil {
		checkOut = *input.CheckOut
	}

	nights, err := utils.CalculateNightsFromStrings(checkIn, checkOut)
	if err != nil {
		return reservation, err
	}
	if nights == 0 {
		return reservation, ErrStayNotBookable
	}

	if input.NumberOfGuests != nil {
		if *input.NumberOfGuests <= 0 {
			return reservation, ErrInvalidGuestCount
		}
		reservation.NumberOfGuests = *input.NumberOfGuests
	}
	if input.SpecialRequests != nil {
		reservation.SpecialRequests = *input.SpecialRequests
	}

	reservation.CheckIn = checkIn
	reservation.CheckOut = checkOut
	reservation.NumberOfNights = nights
	reservation.TotalPrice = utils.CalculateTotalPrice(reservation.PricePerNight, nights)

	if err := s.DB.Save(&reservation).Error; err != nil {
		return reservation, fmt.Errorf("failed to update reservation: %w", err)
	}
	return reservation, nil
}

// UpdateStatus moves the reservation one step through its lifecycle. The
// transition table is enforced here, not just by the console's buttons.
func (s *ReservationService) UpdateStatus(id uint, status string) (models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return reservation, err
	}

	if !models.IsValidReservationStatus(status) {
		return reservation, ErrInvalidStatus
	}
	if !models.CanTransition(reservation.Status, status) {
		return reservation, ErrInvalidTransition
	}

	if err := s.DB.Model(&reservation).Update("status", status).Error; err != nil {
		return reservation, fmt.Errorf("failed to update status: %w", err)
	}
	reservation.Status = status
	return reservation, nil
}

// Delete is a hard delete; there is no tombstone or archive.
func (s *ReservationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}
