package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNightsFromStrings(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2024-03-01", "2024-03-04", 3},
		{"one night", "2024-03-01", "2024-03-02", 1},
		{"same day is zero", "2024-03-04", "2024-03-04", 0},
		{"checkout before checkin is zero", "2024-03-05", "2024-03-04", 0},
		{"across month boundary", "2024-02-28", "2024-03-02", 3},
		{"across leap day", "2024-02-28", "2024-03-01", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := CalculateNightsFromStrings(tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nights)
		})
	}
}

func TestCalculateNightsFromStringsInvalidDate(t *testing.T) {
	_, err := CalculateNightsFromStrings("03/01/2024", "2024-03-04")
	assert.ErrorIs(t, err, ErrInvalidStayDate)

	_, err = CalculateNightsFromStrings("2024-03-01", "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidStayDate)
}

func TestCalculateTotalPrice(t *testing.T) {
	assert.Equal(t, 897.0, CalculateTotalPrice(299, 3))
	assert.Equal(t, 0.0, CalculateTotalPrice(299, 0))
	assert.Equal(t, 199.5, CalculateTotalPrice(66.5, 3))
}
