package booking

import "hotel-booking-core/internal/pkg/statuskey"

// Status is the canonical lifecycle state derived from free-text raw status.
type Status int

const (
	StatusUnknown Status = iota
	StatusBooked
	StatusCheckedIn
	StatusCheckedOut
	StatusCancelled
)

// exact spellings only; anything else, including text naming two states, is Unknown
var statusSpellings = map[string]Status{
	"booked":      StatusBooked,
	"checked_in":  StatusCheckedIn,
	"checkedin":   StatusCheckedIn,
	"checked_out": StatusCheckedOut,
	"checkedout":  StatusCheckedOut,
	"cancelled":   StatusCancelled,
	"canceled":    StatusCancelled,
}

func NormalizeStatus(raw string) Status {
	if s, ok := statusSpellings[statuskey.Key(raw)]; ok {
		return s
	}
	return StatusUnknown
}

// String returns the canonical spelling written to storage.
func (s Status) String() string {
	switch s {
	case StatusBooked:
		return "Booked"
	case StatusCheckedIn:
		return "Checked-In"
	case StatusCheckedOut:
		return "Checked-Out"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IsActive reports whether a reservation in this state occupies its rooms.
func (s Status) IsActive() bool {
	return s == StatusBooked || s == StatusCheckedIn
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// Priority orders the catalog: actionable reservations first, Unknown last.
func (s Status) Priority() int {
	switch s {
	case StatusBooked:
		return 1
	case StatusCheckedIn:
		return 2
	case StatusCheckedOut:
		return 3
	case StatusCancelled:
		return 4
	default:
		return 5
	}
}

var transitions = map[Status][]Status{
	StatusBooked:    {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Operation string

const (
	OpCreate  Operation = "create"
	OpCheckIn Operation = "check-in"
	OpExtend  Operation = "extend"
	OpCancel  Operation = "cancel"
)

var guards = map[Operation][]Status{
	OpCheckIn: {StatusBooked},
	OpExtend:  {StatusBooked, StatusCheckedIn},
	OpCancel:  {StatusBooked},
}

// Guard fails closed: Unknown never satisfies any operation.
func Guard(op Operation, raw string) error {
	s := NormalizeStatus(raw)
	if s == StatusUnknown {
		return &UnrecognizedStatusError{Raw: raw, Attempted: op}
	}
	for _, allowed := range guards[op] {
		if allowed == s {
			return nil
		}
	}
	return &InvalidTransitionError{From: s, Attempted: op}
}
