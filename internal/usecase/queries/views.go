package queries

import (
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/usecase/catalog"
)

const dateLayout = "2006-01-02"

type RoomRefView struct {
	RoomID int64  `json:"roomId"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

// Read models (DTO for read side)
type ReservationView struct {
	DisplayID         string        `json:"displayId"`
	Key               string        `json:"key"`
	Origin            string        `json:"origin"`
	Kind              string        `json:"kind"`
	PackageName       string        `json:"packageName,omitempty"`
	GuestName         string        `json:"guestName"`
	GuestMobile       string        `json:"guestMobile"`
	GuestEmail        string        `json:"guestEmail"`
	CheckIn           string        `json:"checkIn"`
	CheckOut          string        `json:"checkOut"`
	Nights            int           `json:"nights"`
	Adults            int           `json:"adults"`
	Children          int           `json:"children"`
	Rooms             []RoomRefView `json:"rooms"`
	Status            string        `json:"status"`
	RawStatus         string        `json:"rawStatus"`
	DocumentsComplete bool          `json:"documentsComplete"`
	Version           int64         `json:"version"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

func NewReservationView(r booking.Reservation) *ReservationView {
	rooms := make([]RoomRefView, len(r.Rooms))
	for i, ref := range r.Rooms {
		rooms[i] = RoomRefView{RoomID: ref.RoomID, Number: ref.Number, Type: ref.Type}
	}
	return &ReservationView{
		DisplayID:         r.DisplayID(),
		Key:               r.Key.String(),
		Origin:            r.Key.Origin.Name(),
		Kind:              string(r.Kind),
		PackageName:       r.PackageName,
		GuestName:         r.Guest.Name,
		GuestMobile:       r.Guest.Mobile,
		GuestEmail:        r.Guest.Email,
		CheckIn:           formatDate(r.Stay.CheckIn),
		CheckOut:          formatDate(r.Stay.CheckOut),
		Nights:            r.Stay.Nights(),
		Adults:            r.Stay.Adults,
		Children:          r.Stay.Children,
		Rooms:             rooms,
		Status:            r.Status().String(),
		RawStatus:         r.RawStatus,
		DocumentsComplete: r.Documents.Complete(),
		Version:           r.Version,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func NewReservationViews(rs []booking.Reservation) []*ReservationView {
	views := make([]*ReservationView, len(rs))
	for i, r := range rs {
		views[i] = NewReservationView(r)
	}
	return views
}

type ReservationPage struct {
	Items []*ReservationView `json:"items"`
	Total int                `json:"total"`
	Skip  int                `json:"skip"`
	Limit int                `json:"limit"`
}

type CatalogView struct {
	Items []*ReservationView `json:"items"`
	Stats catalog.Stats      `json:"stats"`
}

type RoomView struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	Type          string `json:"type"`
	AdultCapacity int    `json:"adultCapacity"`
	ChildCapacity int    `json:"childCapacity"`
	PriceCents    int64  `json:"priceCents"`
	Price         string `json:"price"`
	Status        string `json:"status"`
}

func NewRoomView(r room.Room) *RoomView {
	return &RoomView{
		ID:            r.ID,
		Number:        r.Number,
		Type:          r.Type,
		AdultCapacity: r.AdultCapacity,
		ChildCapacity: r.ChildCapacity,
		PriceCents:    r.Price.Cents(),
		Price:         r.Price.String(),
		Status:        r.Status.String(),
	}
}

const (
	AvailabilityModeInterval = "interval"
	AvailabilityModeStatus   = "status"
)

type AvailabilityView struct {
	// Mode is "interval" when a complete stay was given, otherwise "status".
	Mode          string      `json:"mode"`
	CheckIn       string      `json:"checkIn,omitempty"`
	CheckOut      string      `json:"checkOut,omitempty"`
	Nights        int         `json:"nights,omitempty"`
	Rooms         []*RoomView `json:"rooms"`
	AdultCapacity int         `json:"adultCapacity"`
	ChildCapacity int         `json:"childCapacity"`
}

type CheckInPreviewView struct {
	DisplayID        string `json:"displayId"`
	Status           string `json:"status"`
	Allowed          bool   `json:"allowed"`
	Reason           string `json:"reason,omitempty"`
	EarlyCheckIn     bool   `json:"earlyCheckIn"`
	ScheduledCheckIn string `json:"scheduledCheckIn"`
	AdvancedTo       string `json:"advancedTo,omitempty"`
	NightsAdvanced   int    `json:"nightsAdvanced"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
