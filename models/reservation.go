package models

import (
	"time"
)

// Reservation lifecycle. checked-out and cancelled are terminal.
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked-in"
	ReservationStatusCheckedOut = "checked-out"
	ReservationStatusCancelled  = "cancelled"
)

// reservationTransitions lists the one-step transitions the admin console
// may perform. Absent keys are terminal states.
var reservationTransitions = map[string][]string{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCheckedIn, ReservationStatusCancelled},
	ReservationStatusCheckedIn: {ReservationStatusCheckedOut, ReservationStatusCancelled},
}

func IsValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a reservation may move from one status to
// another in a single admin action.
func CanTransition(from, to string) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestName  string `json:"guestName" gorm:"column:guest_name;size:255"`
	GuestEmail string `json:"guestEmail" gorm:"column:guest_email;size:150"`
	GuestPhone string `json:"guestPhone" gorm:"column:guest_phone;size:50"`

	// RoomID is a plain reference, not a foreign key: deleting the room
	// leaves the reservation (and its snapshots) untouched.
	RoomID uint `json:"roomId" gorm:"column:room_id;index"`

	// RoomName and PricePerNight are copied from the room at booking time
	// so later room edits never alter historical reservations.
	RoomName      string  `json:"roomName" gorm:"column:room_name;size:255"`
	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`

	// Calendar dates only, "2006-01-02", no timezone.
	CheckIn  string `json:"checkIn" gorm:"column:check_in;size:10"`
	CheckOut string `json:"checkOut" gorm:"column:check_out;size:10"`

	NumberOfGuests int     `json:"numberOfGuests" gorm:"column:number_of_guests"`
	NumberOfNights int     `json:"numberOfNights" gorm:"column:number_of_nights"`
	TotalPrice     float64 `json:"totalPrice" gorm:"column:total_price"`

	SpecialRequests string `json:"specialRequests,omitempty" gorm:"column:special_requests;type:text"`

	Status string `json:"status" gorm:"size:32;index"`

	// Deletion is a hard delete; the source kept no tombstones.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
