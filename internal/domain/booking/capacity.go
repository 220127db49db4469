package booking

import "hotel-booking-core/internal/domain/room"

type CapacitySummary struct {
	AdultCapacity     int
	ChildCapacity     int
	AdultsRequested   int
	ChildrenRequested int
	AdultsOK          bool
	ChildrenOK        bool
}

func SummarizeCapacity(rooms []room.Room, adults, children int) CapacitySummary {
	s := CapacitySummary{AdultsRequested: adults, ChildrenRequested: children}
	for _, r := range rooms {
		s.AdultCapacity += r.AdultCapacity
		s.ChildCapacity += r.ChildCapacity
	}
	s.AdultsOK = adults <= s.AdultCapacity
	s.ChildrenOK = children <= s.ChildCapacity
	return s
}

func (s CapacitySummary) OK() bool {
	return s.AdultsOK && s.ChildrenOK
}

// Err reports the adults dimension first when both overflow.
func (s CapacitySummary) Err() error {
	if !s.AdultsOK {
		return &CapacityExceededError{Dimension: DimensionAdults, Requested: s.AdultsRequested, Available: s.AdultCapacity}
	}
	if !s.ChildrenOK {
		return &CapacityExceededError{Dimension: DimensionChildren, Requested: s.ChildrenRequested, Available: s.ChildCapacity}
	}
	return nil
}

// ValidateCapacity exempts whole-property bookings, which allocate the entire inventory.
func ValidateCapacity(kind Kind, rooms []room.Room, adults, children int) error {
	if kind == KindWholeProperty {
		return nil
	}
	return SummarizeCapacity(rooms, adults, children).Err()
}
