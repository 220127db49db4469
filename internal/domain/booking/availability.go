package booking

import (
	"slices"

	"hotel-booking-core/internal/domain/room"
)

// AvailabilityQuery without an Interval asks for the coarse "no dates chosen" view.
type AvailabilityQuery struct {
	Interval *Interval
	Exclude  *CompositeKey
}

// BlockedRooms maps each room id to the keys of active reservations that hold it
// during interval. Cancelled, checked-out and unrecognized reservations never block.
func BlockedRooms(interval Interval, reservations []Reservation, exclude *CompositeKey) map[int64][]CompositeKey {
	blocked := make(map[int64][]CompositeKey)
	for _, r := range reservations {
		if exclude != nil && r.Key == *exclude {
			continue
		}
		if !r.Status().IsActive() || !Overlaps(r.Stay.Interval, interval) {
			continue
		}
		for _, ref := range r.Rooms {
			blocked[ref.RoomID] = append(blocked[ref.RoomID], r.Key)
		}
	}
	return blocked
}

// ResolveAvailable returns rooms that pass both the administrative gate and the
// interval-conflict gate. An absent or incomplete interval falls back to rooms
// whose status is exactly Available. A complete but empty or reversed interval
// has no free rooms; callers are expected to reject it first.
func ResolveAvailable(q AvailabilityQuery, reservations []Reservation, rooms []room.Room) []room.Room {
	available := make([]room.Room, 0, len(rooms))
	if q.Interval != nil && q.Interval.Complete() && q.Interval.Validate() != nil {
		return available
	}
	if q.Interval == nil || !q.Interval.Complete() {
		for _, r := range rooms {
			if r.Status == room.StatusAvailable {
				available = append(available, r)
			}
		}
		return available
	}

	blocked := BlockedRooms(*q.Interval, reservations, q.Exclude)
	for _, r := range rooms {
		if !r.Bookable() {
			continue
		}
		if _, taken := blocked[r.ID]; taken {
			continue
		}
		available = append(available, r)
	}
	return available
}

// EnsureRoomsFree returns a RoomUnavailableError listing every room in roomIDs
// held by another active reservation during interval.
func EnsureRoomsFree(interval Interval, roomIDs []int64, reservations []Reservation, exclude *CompositeKey) error {
	blocked := BlockedRooms(interval, reservations, exclude)
	var conflicts []int64
	for _, id := range roomIDs {
		if _, taken := blocked[id]; taken {
			conflicts = append(conflicts, id)
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	slices.Sort(conflicts)
	return &RoomUnavailableError{RoomIDs: slices.Compact(conflicts)}
}
