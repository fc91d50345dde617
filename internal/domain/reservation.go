package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

var ErrInvalidStay = errors.New("checkin date must be before checkout date")

type Reservation struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RoomID       uuid.UUID
	RoomNumber   int
	FirstName    string
	LastName     string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Status       ReservationStatus
	Version      int64
	CreatedDate  time.Time
	UpdateDate   time.Time
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent ranges (aEnd == bStart) do not:
// checkout day is exclusive, so a guest may check in the day another
// checks out.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsRange reports whether the reservation's stay intersects
// [checkin, checkout).
func (r *Reservation) OverlapsRange(checkin, checkout time.Time) bool {
	return Overlaps(r.CheckinDate, r.CheckoutDate, checkin, checkout)
}

// ValidateStay rejects empty or inverted date ranges.
func ValidateStay(checkin, checkout time.Time) error {
	if !checkin.Before(checkout) {
		return ErrInvalidStay
	}
	return nil
}
