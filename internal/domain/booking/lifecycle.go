package booking

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"hotel-booking-core/internal/domain/room"
)

// Snapshot is the committed state a guard is evaluated against.
type Snapshot struct {
	Rooms        []room.Room
	Reservations []Reservation
}

type CreateSpec struct {
	Origin      Origin
	Kind        Kind
	PackageName string
	Guest       Guest
	Stay        Stay
	// RoomIDs is ignored for whole-property bookings.
	RoomIDs []int64
}

// Create builds a new Booked reservation without a LocalID; storage assigns it.
func Create(spec CreateSpec, snap Snapshot, now time.Time) (Reservation, error) {
	if spec.Origin != OriginRegular && spec.Origin != OriginPackage {
		return Reservation{}, fmt.Errorf("%w: %q", ErrInvalidOrigin, spec.Origin)
	}
	kind := spec.Kind
	if kind == "" {
		kind = KindRoomType
	}
	if kind != KindRoomType && kind != KindWholeProperty {
		return Reservation{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	interval, err := NewInterval(spec.Stay.CheckIn, spec.Stay.CheckOut)
	if err != nil {
		return Reservation{}, err
	}

	chosen, err := chooseRooms(kind, spec.RoomIDs, snap.Rooms)
	if err != nil {
		return Reservation{}, err
	}

	ids := make([]int64, len(chosen))
	for i, r := range chosen {
		ids[i] = r.ID
	}
	if err := EnsureRoomsFree(interval, ids, snap.Reservations, nil); err != nil {
		return Reservation{}, err
	}

	if err := ValidateCapacity(kind, chosen, spec.Stay.Adults, spec.Stay.Children); err != nil {
		return Reservation{}, err
	}

	refs := make([]RoomRef, len(chosen))
	for i, r := range chosen {
		refs[i] = RoomRef{RoomID: r.ID, Number: r.Number, Type: r.Type}
	}

	return Reservation{
		Key:         CompositeKey{Origin: spec.Origin},
		Kind:        kind,
		PackageName: spec.PackageName,
		Guest:       spec.Guest,
		Stay:        Stay{Interval: interval, Adults: spec.Stay.Adults, Children: spec.Stay.Children},
		Rooms:       refs,
		RawStatus:   StatusBooked.String(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// chooseRooms returns chosen rooms in ascending id order.
func chooseRooms(kind Kind, roomIDs []int64, rooms []room.Room) ([]room.Room, error) {
	if kind == KindWholeProperty {
		var all []room.Room
		for _, r := range rooms {
			if r.Bookable() {
				all = append(all, r)
			}
		}
		if len(all) == 0 {
			return nil, ErrNoRoomsSelected
		}
		slices.SortFunc(all, func(a, b room.Room) int { return cmp.Compare(a.ID, b.ID) })
		return all, nil
	}

	if len(roomIDs) == 0 {
		return nil, ErrNoRoomsSelected
	}
	ids := slices.Clone(roomIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	byID := make(map[int64]room.Room, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}

	chosen := make([]room.Room, 0, len(ids))
	var missing []int64
	for _, id := range ids {
		r, ok := byID[id]
		if !ok || !r.Bookable() {
			missing = append(missing, id)
			continue
		}
		chosen = append(chosen, r)
	}
	if len(missing) > 0 {
		return nil, &RoomUnavailableError{RoomIDs: missing}
	}
	return chosen, nil
}

type CheckInResult struct {
	Reservation  Reservation
	EarlyCheckIn bool
	// AdvancedNights is the stretch newly occupied when check-in moved to today.
	AdvancedNights *Interval
}

func CheckIn(r Reservation, docs Documents, now time.Time) (CheckInResult, error) {
	if err := Guard(OpCheckIn, r.RawStatus); err != nil {
		return CheckInResult{}, err
	}
	if !docs.Complete() {
		return CheckInResult{}, ErrMissingDocuments
	}

	next := r.clone()
	next.RawStatus = StatusCheckedIn.String()
	next.Documents = docs
	next.UpdatedAt = now

	result := CheckInResult{Reservation: next}
	today := CivilDate(now)
	if next.Stay.CheckIn.After(today) {
		advanced := Interval{CheckIn: today, CheckOut: next.Stay.CheckIn}
		next.Stay.CheckIn = today
		result.Reservation = next
		result.EarlyCheckIn = true
		result.AdvancedNights = &advanced
	}
	return result, nil
}

type EarlyCheckInWarning struct {
	Required         bool
	ScheduledCheckIn time.Time
	AdvancedTo       time.Time
	NightsAdvanced   int
}

// PreviewCheckIn reports whether checking in now would move check-in to today.
func PreviewCheckIn(r Reservation, now time.Time) EarlyCheckInWarning {
	today := CivilDate(now)
	w := EarlyCheckInWarning{ScheduledCheckIn: r.Stay.CheckIn}
	if r.Stay.CheckIn.After(today) {
		w.Required = true
		w.AdvancedTo = today
		w.NightsAdvanced = Interval{CheckIn: today, CheckOut: r.Stay.CheckIn}.Nights()
	}
	return w
}

type ExtendResult struct {
	Reservation Reservation
	// Extension holds the added nights, which must be free of other active stays.
	Extension Interval
}

func Extend(r Reservation, newCheckOut time.Time, now time.Time) (ExtendResult, error) {
	if err := Guard(OpExtend, r.RawStatus); err != nil {
		return ExtendResult{}, err
	}
	newCheckOut = CivilDate(newCheckOut)
	if !newCheckOut.After(r.Stay.CheckOut) {
		return ExtendResult{}, ErrExtendNotLater
	}

	next := r.clone()
	extension := Interval{CheckIn: r.Stay.CheckOut, CheckOut: newCheckOut}
	next.Stay.CheckOut = newCheckOut
	next.UpdatedAt = now
	return ExtendResult{Reservation: next, Extension: extension}, nil
}

func Cancel(r Reservation, now time.Time) (Reservation, error) {
	if err := Guard(OpCancel, r.RawStatus); err != nil {
		return Reservation{}, err
	}
	next := r.clone()
	next.RawStatus = StatusCancelled.String()
	next.UpdatedAt = now
	return next, nil
}
