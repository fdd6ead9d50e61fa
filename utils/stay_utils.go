package utils

import (
	"errors"
	"math"
	"time"
)

// StayDateLayout is the wire format for check-in/check-out dates. Dates are
// calendar days only; no time-of-day or timezone is meaningful.
const StayDateLayout = "2006-01-02"

var ErrInvalidStayDate = errors.New("invalid stay date")

// ParseStayDate parses a "2006-01-02" date string.
func ParseStayDate(s string) (time.Time, error) {
	t, err := time.Parse(StayDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidStayDate
	}
	return t, nil
}

// CalculateNights returns the billable night count between two parsed dates:
// ceil((checkOut - checkIn) / 24h). A non-positive difference collapses to
// zero nights, which callers treat as "not yet bookable" rather than an
// error.
func CalculateNights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	nights := int(math.Ceil(diff.Hours() / 24))
	if nights <= 0 {
		return 0
	}
	return nights
}

// CalculateNightsFromStrings parses both dates and computes the night count.
func CalculateNightsFromStrings(checkIn, checkOut string) (int, error) {
	in, err := ParseStayDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseStayDate(checkOut)
	if err != nil {
		return 0, err
	}
	return CalculateNights(in, out), nil
}

// CalculateTotalPrice is the whole pricing model: nights times the nightly
// rate snapshot.
func CalculateTotalPrice(pricePerNight float64, nights int) float64 {
	return pricePerNight * float64(nights)
}
