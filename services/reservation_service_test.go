package services

import (
	"testing"

	"tyco-hotel-backend/models"
	"tyco-hotel-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput(roomID uint) CreateReservationInput {
	return CreateReservationInput{
		GuestName:      "Ama Mensah",
		GuestEmail:     "ama@example.com",
		GuestPhone:     "+233201234567",
		RoomID:         roomID,
		CheckIn:        "2024-03-01",
		CheckOut:       "2024-03-04",
		NumberOfGuests: 2,
	}
}

func TestCreateReservationSnapshotsRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Deluxe Suite", 299)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	assert.Equal(t, models.ReservationStatusPending, reservation.Status)
	assert.Equal(t, room.ID, reservation.RoomID)
	assert.Equal(t, "Deluxe Suite", reservation.RoomName)
	assert.Equal(t, 299.0, reservation.PricePerNight)
	assert.Equal(t, 3, reservation.NumberOfNights)
	assert.Equal(t, 897.0, reservation.TotalPrice)
}

func TestCreateReservationValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Standard Room", 199)

	t.Run("zero nights is not bookable", func(t *testing.T) {
		input := validInput(room.ID)
		input.CheckOut = input.CheckIn
		_, err := svc.Create(input)
		assert.ErrorIs(t, err, ErrStayNotBookable)
	})

	t.Run("checkout before checkin is not bookable", func(t *testing.T) {
		input := validInput(room.ID)
		input.CheckIn = "2024-03-04"
		input.CheckOut = "2024-03-01"
		_, err := svc.Create(input)
		assert.ErrorIs(t, err, ErrStayNotBookable)
	})

	t.Run("malformed date", func(t *testing.T) {
		input := validInput(room.ID)
		input.CheckIn = "01-03-2024"
		_, err := svc.Create(input)
		assert.ErrorIs(t, err, utils.ErrInvalidStayDate)
	})

	t.Run("missing guest info", func(t *testing.T) {
		input := validInput(room.ID)
		input.GuestPhone = "  "
		_, err := svc.Create(input)
		assert.ErrorIs(t, err, ErrMissingGuestInfo)
	})

	t.Run("non-positive guest count", func(t *testing.T) {
		input := validInput(room.ID)
		input.NumberOfGuests = 0
		_, err := svc.Create(input)
		assert.ErrorIs(t, err, ErrInvalidGuestCount)
	})

	t.Run("unknown room", func(t *testing.T) {
		input := validInput(room.ID + 1000)
		_, err := svc.Create(input)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestRoomPriceEditDoesNotTouchReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	rooms := NewRoomService(db)
	room := createTestRoom(t, db, "Superior Room", 299)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	require.NoError(t, rooms.Update(room.ID, map[string]interface{}{
		"name":  "Superior Room Renamed",
		"price": 999.0,
	}))

	stored, err := svc.GetByID(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, "Superior Room", stored.RoomName)
	assert.Equal(t, 299.0, stored.PricePerNight)
	assert.Equal(t, 897.0, stored.TotalPrice)
}

func TestUpdateDetailsRecomputesFromSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Deluxe Suite", 299)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	// re-price the room before the edit to prove the edit uses the snapshot
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).Update("price", 500).Error)

	newCheckOut := "2024-03-06"
	guests := 3
	updated, err := svc.UpdateDetails(reservation.ID, UpdateReservationInput{
		CheckOut:       &newCheckOut,
		NumberOfGuests: &guests,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.NumberOfNights)
	assert.Equal(t, 299.0*5, updated.TotalPrice)
	assert.Equal(t, 3, updated.NumberOfGuests)
}

func TestUpdateDetailsRejectsZeroNights(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Standard Room", 199)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	badCheckOut := "2024-03-01"
	_, err = svc.UpdateDetails(reservation.ID, UpdateReservationInput{CheckOut: &badCheckOut})
	assert.ErrorIs(t, err, ErrStayNotBookable)

	// the stored record is untouched
	stored, err := svc.GetByID(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", stored.CheckOut)
	assert.Equal(t, 3, stored.NumberOfNights)
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Deluxe Suite", 299)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	// pending cannot jump straight to checked-out
	_, err = svc.UpdateStatus(reservation.ID, models.ReservationStatusCheckedOut)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// walk the full lifecycle
	for _, status := range []string{
		models.ReservationStatusConfirmed,
		models.ReservationStatusCheckedIn,
		models.ReservationStatusCheckedOut,
	} {
		updated, err := svc.UpdateStatus(reservation.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// checked-out is terminal
	_, err = svc.UpdateStatus(reservation.ID, models.ReservationStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// unknown status value
	_, err = svc.UpdateStatus(reservation.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancelFromEveryNonTerminalState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Deluxe Suite", 299)

	steps := map[string][]string{
		models.ReservationStatusPending:   {},
		models.ReservationStatusConfirmed: {models.ReservationStatusConfirmed},
		models.ReservationStatusCheckedIn: {models.ReservationStatusConfirmed, models.ReservationStatusCheckedIn},
	}

	for state, path := range steps {
		reservation, err := svc.Create(validInput(room.ID))
		require.NoError(t, err)

		for _, status := range path {
			_, err := svc.UpdateStatus(reservation.ID, status)
			require.NoError(t, err)
		}

		updated, err := svc.UpdateStatus(reservation.ID, models.ReservationStatusCancelled)
		require.NoErrorf(t, err, "cancel from %s", state)
		assert.Equal(t, models.ReservationStatusCancelled, updated.Status)
	}
}

func TestDeleteReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Standard Room", 199)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(reservation.ID))

	_, err = svc.GetByID(reservation.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	list, err := svc.List("")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Delete(reservation.ID), ErrReservationNotFound)
}

func TestRoomDeleteLeavesReservationIntact(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	rooms := NewRoomService(db)
	room := createTestRoom(t, db, "Deluxe Suite", 299)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	require.NoError(t, rooms.Delete(room.ID))

	stored, err := svc.GetByID(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, stored.RoomID)
	assert.Equal(t, "Deluxe Suite", stored.RoomName)
	assert.Equal(t, 299.0, stored.PricePerNight)
}

func TestListReservationsByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Standard Room", 199)

	first, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)
	_, err = svc.Create(validInput(room.ID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, models.ReservationStatusConfirmed)
	require.NoError(t, err)

	pending, err := svc.List(models.ReservationStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	confirmed, err := svc.List(models.ReservationStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, first.ID, confirmed[0].ID)
}

func TestIdempotentRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	room := createTestRoom(t, db, "Standard Room", 199)

	reservation, err := svc.Create(validInput(room.ID))
	require.NoError(t, err)

	a, err := svc.GetByID(reservation.ID)
	require.NoError(t, err)
	b, err := svc.GetByID(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
