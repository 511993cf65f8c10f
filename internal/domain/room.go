package domain

import "time"

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room represents a rentable room of a property
type Room struct {
	ID         string
	Number     string
	PropertyID string
	Type       string
	Status     RoomStatus
	Price      float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveRoomCount returns the room count used as a divisor, never less than 1
func EffectiveRoomCount(rooms int) int {
	if rooms < 1 {
		return 1
	}
	return rooms
}
