package request

import (
	"strings"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/usecase/commands"
)

type GuestRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Mobile string `json:"mobile" binding:"max=50"`
	Email  string `json:"email" binding:"omitempty,email"`
}

type CreateBookingRequest struct {
	Origin      string       `json:"origin" binding:"required"`
	Kind        string       `json:"kind"`
	PackageName string       `json:"packageName" binding:"max=200"`
	Guest       GuestRequest `json:"guest" binding:"required"`
	CheckIn     string       `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut    string       `json:"checkOut" binding:"required,datetime=2006-01-02"`
	Adults      int          `json:"adults" binding:"min=0"`
	Children    int          `json:"children" binding:"min=0"`
	RoomIDs     []int64      `json:"roomIds"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	checkIn, err := booking.ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	checkOut, err := booking.ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{
		Origin:      r.Origin,
		Kind:        r.Kind,
		PackageName: strings.TrimSpace(r.PackageName),
		Guest: booking.Guest{
			Name:   strings.TrimSpace(r.Guest.Name),
			Mobile: strings.TrimSpace(r.Guest.Mobile),
			Email:  strings.TrimSpace(r.Guest.Email),
		},
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   r.Adults,
		Children: r.Children,
		RoomIDs:  r.RoomIDs,
	}, nil
}

// Both documents are checked by the lifecycle, so a missing one is a 422 rather than a binding error.
type CheckInRequest struct {
	IdentityDocument string `json:"identityDocument"`
	RegistrationForm string `json:"registrationForm"`
}

func (r CheckInRequest) ToDomain() booking.Documents {
	return booking.Documents{
		IdentityDocument: strings.TrimSpace(r.IdentityDocument),
		RegistrationForm: strings.TrimSpace(r.RegistrationForm),
	}
}

type ExtendBookingRequest struct {
	CheckOut string `json:"checkOut" binding:"required,datetime=2006-01-02"`
}

func (r ExtendBookingRequest) NewCheckOut() (time.Time, error) {
	return booking.ParseDate(r.CheckOut)
}

type ListBookingsQuery struct {
	Skip  int `form:"skip" binding:"min=0,max=2147483647"`
	Limit int `form:"limit" binding:"min=0"`
}

type CatalogQuery struct {
	Limit int `form:"limit" binding:"min=0"`
	Pages int `form:"pages" binding:"min=0,max=50"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"omitempty,datetime=2006-01-02"`
	CheckOut string `form:"check_out" binding:"omitempty,datetime=2006-01-02"`
	Exclude  string `form:"exclude"`
}

// ToDomain leaves Interval nil unless both dates are present; the resolver then
// falls back to status-only availability. Two dates that do not form a stay are
// rejected with ErrInvalidInterval.
func (q AvailabilityQuery) ToDomain() (booking.AvailabilityQuery, error) {
	var out booking.AvailabilityQuery
	if q.CheckIn != "" && q.CheckOut != "" {
		checkIn, err := booking.ParseDate(q.CheckIn)
		if err != nil {
			return out, err
		}
		checkOut, err := booking.ParseDate(q.CheckOut)
		if err != nil {
			return out, err
		}
		interval, err := booking.NewInterval(checkIn, checkOut)
		if err != nil {
			return out, err
		}
		out.Interval = &interval
	}
	if q.Exclude != "" {
		key, err := booking.ParseDisplayID(q.Exclude)
		if err != nil {
			return out, err
		}
		out.Exclude = &key
	}
	return out, nil
}
