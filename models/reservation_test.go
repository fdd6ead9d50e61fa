package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusCheckedIn, false},
		{ReservationStatusPending, ReservationStatusCheckedOut, false},
		{ReservationStatusConfirmed, ReservationStatusCheckedIn, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusCheckedOut, false},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
		{ReservationStatusCheckedIn, ReservationStatusCheckedOut, true},
		{ReservationStatusCheckedIn, ReservationStatusCancelled, true},
		{ReservationStatusCheckedIn, ReservationStatusConfirmed, false},
		// terminal states
		{ReservationStatusCheckedOut, ReservationStatusPending, false},
		{ReservationStatusCheckedOut, ReservationStatusCancelled, false},
		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
		// self transitions are not steps
		{ReservationStatusPending, ReservationStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.allowed, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestIsValidReservationStatus(t *testing.T) {
	for _, s := range []string{
		ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled,
	} {
		assert.True(t, IsValidReservationStatus(s), s)
	}

	assert.False(t, IsValidReservationStatus(""))
	assert.False(t, IsValidReservationStatus("Pending"))
	assert.False(t, IsValidReservationStatus("checkedout"))
}
