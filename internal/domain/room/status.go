package room

import "hotel-booking-core/internal/pkg/statuskey"

type Status int

const (
	StatusUnknown Status = iota
	StatusAvailable
	StatusDisabled
	StatusComingSoon
	StatusMaintenance
	StatusReserved
	StatusOccupied
)

var statusSpellings = map[string]Status{
	"available":         StatusAvailable,
	"disabled":          StatusDisabled,
	"inactive":          StatusDisabled,
	"coming_soon":       StatusComingSoon,
	"comingsoon":        StatusComingSoon,
	"maintenance":       StatusMaintenance,
	"under_maintenance": StatusMaintenance,
	"reserved":          StatusReserved,
	"occupied":          StatusOccupied,
}

func ParseStatus(raw string) Status {
	if s, ok := statusSpellings[statuskey.Key(raw)]; ok {
		return s
	}
	return StatusUnknown
}

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusDisabled:
		return "Disabled"
	case StatusComingSoon:
		return "Coming Soon"
	case StatusMaintenance:
		return "Maintenance"
	case StatusReserved:
		return "Reserved"
	case StatusOccupied:
		return "Occupied"
	default:
		return "Unknown"
	}
}

// Bookable is false only for the administrative blocks. Statuses outside the
// table (housekeeping states such as "Cleaning") stay allocatable.
func (s Status) Bookable() bool {
	switch s {
	case StatusDisabled, StatusComingSoon, StatusMaintenance:
		return false
	default:
		return true
	}
}
