package booking

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrBookingConflict: the application-level overlap check found an
	// ACTIVE reservation in the way, or a version-checked write lost its
	// race. Retryable by the caller.
	ErrBookingConflict = errors.New("room already booked for the selected dates")

	// ErrRoomAlreadyBooked: the database exclusion constraint fired after
	// the application-level check had passed, meaning a concurrent
	// transaction slipped through the race window. Also retryable, kept
	// distinct because it signals the safety net engaged.
	ErrRoomAlreadyBooked = errors.New("room is already booked for the selected dates")
)
