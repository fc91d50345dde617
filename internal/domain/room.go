package domain

import "github.com/google/uuid"

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeSuite  RoomType = "SUITE"
)

// Room is read-mostly inventory. Rooms are never mutated by the booking
// flow; creates only take an exclusive lock on the row.
type Room struct {
	ID         uuid.UUID
	RoomNumber int
	Type       RoomType
}
