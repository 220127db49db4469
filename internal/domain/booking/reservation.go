package booking

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindRoomType      Kind = "room_type"
	KindWholeProperty Kind = "whole_property"
)

func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", "room_type":
		return KindRoomType, nil
	case "whole_property":
		return KindWholeProperty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

type Guest struct {
	Name   string
	Mobile string
	Email  string
}

type Stay struct {
	Interval
	Adults   int
	Children int
}

// Documents are opaque references (for example storage keys) supplied at check-in.
type Documents struct {
	IdentityDocument string
	RegistrationForm string
}

func (d Documents) Complete() bool {
	return strings.TrimSpace(d.IdentityDocument) != "" && strings.TrimSpace(d.RegistrationForm) != ""
}

// Reservation is passed by value; every lifecycle operation returns a new copy.
type Reservation struct {
	Key         CompositeKey
	Kind        Kind
	PackageName string
	Guest       Guest
	Stay        Stay
	Rooms       []RoomRef
	RawStatus   string
	Documents   Documents
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Reservation) Status() Status {
	return NormalizeStatus(r.RawStatus)
}

func (r Reservation) DisplayID() string {
	return r.Key.DisplayID()
}

func (r Reservation) RoomIDs() []int64 {
	ids := make([]int64, len(r.Rooms))
	for i, ref := range r.Rooms {
		ids[i] = ref.RoomID
	}
	return ids
}

func (r Reservation) References(roomID int64) bool {
	for _, ref := range r.Rooms {
		if ref.RoomID == roomID {
			return true
		}
	}
	return false
}

// clone detaches the rooms slice so callers can mutate the copy freely.
func (r Reservation) clone() Reservation {
	if r.Rooms != nil {
		r.Rooms = append([]RoomRef(nil), r.Rooms...)
	}
	return r
}
