//go:build unit || e2e

package builder

import (
	"fmt"

	"hotel-booking-core/internal/domain/room"
)

type RoomBuilder struct {
	ID         int64
	Number     string
	Type       string
	Adults     int
	Children   int
	PriceCents int64
	Status     room.Status
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:         1,
		Number:     "101",
		Type:       "Deluxe",
		Adults:     2,
		Children:   1,
		PriceCents: 150000,
		Status:     room.StatusAvailable,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithID(id int64) *RoomBuilder {
	r.ID = id
	r.Number = fmt.Sprintf("%d", 100+id)
	return r
}

func (r *RoomBuilder) WithCapacity(adults, children int) *RoomBuilder {
	r.Adults = adults
	r.Children = children
	return r
}

func (r *RoomBuilder) WithStatus(s room.Status) *RoomBuilder {
	r.Status = s
	return r
}

func (r *RoomBuilder) BuildDomain() room.Room {
	return room.Room{
		ID:            r.ID,
		Number:        r.Number,
		Type:          r.Type,
		AdultCapacity: r.Adults,
		ChildCapacity: r.Children,
		Price:         room.NewMoney(r.PriceCents),
		Status:        r.Status,
	}
}

// Rooms builds n available rooms with ids 1..n and the default capacity.
func Rooms(n int) []room.Room {
	rooms := make([]room.Room, n)
	for i := range n {
		rooms[i] = NewRoomBuilder().WithID(int64(i + 1)).BuildDomain()
	}
	return rooms
}
