package room

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeCapacity = errors.New("room capacity cannot be negative")
	ErrNegativePrice    = errors.New("room price cannot be negative")
	ErrEmptyNumber      = errors.New("room number cannot be empty")
)

// Room is owned by the inventory collaborator; the core only reads it.
type Room struct {
	ID            int64
	Number        string
	Type          string
	AdultCapacity int
	ChildCapacity int
	Price         Money
	Status        Status
}

func NewRoom(id int64, number, roomType string, adults, children int, price Money, status Status) (Room, error) {
	if number == "" {
		return Room{}, ErrEmptyNumber
	}
	if adults < 0 || children < 0 {
		return Room{}, ErrNegativeCapacity
	}
	if price.Cents() < 0 {
		return Room{}, ErrNegativePrice
	}
	return Room{
		ID:            id,
		Number:        number,
		Type:          roomType,
		AdultCapacity: adults,
		ChildCapacity: children,
		Price:         price,
		Status:        status,
	}, nil
}

func (r Room) String() string {
	return fmt.Sprintf("%s (%s)", r.Number, r.Type)
}

// Bookable reports whether the administrative status allows new allocations.
// Interval conflicts are a separate gate.
func (r Room) Bookable() bool {
	return r.Status.Bookable()
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
