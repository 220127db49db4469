package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInterval     = errors.New("check-out must be at least one night after check-in")
	ErrNoRoomsSelected     = errors.New("no rooms selected")
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUnrecognizedStatus  = errors.New("unrecognized reservation status")
	ErrIdentityCollision   = errors.New("identity collision")
	ErrRoomUnavailable     = errors.New("room unavailable for the requested dates")
	ErrMissingDocuments    = errors.New("identity document and registration form are both required")
	ErrExtendNotLater      = errors.New("new check-out must be after the current check-out")
	ErrStaleReservation    = errors.New("reservation was modified concurrently")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDisplayID    = errors.New("invalid display id")
	ErrInvalidOrigin       = errors.New("invalid reservation origin")
	ErrInvalidKind         = errors.New("invalid reservation kind")
)

type Dimension string

const (
	DimensionAdults   Dimension = "adults"
	DimensionChildren Dimension = "children"
)

type CapacityExceededError struct {
	Dimension Dimension
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s exceed capacity by %d (requested %d, available %d)",
		e.Dimension, e.Requested-e.Available, e.Requested, e.Available)
}

func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }

type InvalidTransitionError struct {
	From      Status
	Attempted Operation
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a reservation that is %s", e.Attempted, e.From)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// UnrecognizedStatusError is returned by every guard when the raw status normalizes to Unknown.
type UnrecognizedStatusError struct {
	Raw       string
	Attempted Operation
}

func (e *UnrecognizedStatusError) Error() string {
	return fmt.Sprintf("cannot %s: status %q is not recognized", e.Attempted, e.Raw)
}

func (e *UnrecognizedStatusError) Is(target error) bool { return target == ErrUnrecognizedStatus }

type IdentityCollisionError struct {
	Key   CompositeKey
	Field string
}

func (e *IdentityCollisionError) Error() string {
	return fmt.Sprintf("records sharing key %s disagree on %s", e.Key, e.Field)
}

func (e *IdentityCollisionError) Is(target error) bool { return target == ErrIdentityCollision }

type RoomUnavailableError struct {
	RoomIDs []int64
}

func (e *RoomUnavailableError) Error() string {
	ids := make([]string, len(e.RoomIDs))
	for i, id := range e.RoomIDs {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("rooms [%s] are not available for the requested dates", strings.Join(ids, ", "))
}

func (e *RoomUnavailableError) Is(target error) bool { return target == ErrRoomUnavailable }
