package response

import (
	"time"

	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomRefResponse struct {
	RoomID int64  `json:"roomId"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

type BookingResponse struct {
	DisplayID         string            `json:"displayId"`
	Key               string            `json:"key"`
	Origin            string            `json:"origin"`
	Kind              string            `json:"kind"`
	PackageName       string            `json:"packageName,omitempty"`
	GuestName         string            `json:"guestName"`
	GuestMobile       string            `json:"guestMobile"`
	GuestEmail        string            `json:"guestEmail"`
	CheckIn           string            `json:"checkIn"`
	CheckOut          string            `json:"checkOut"`
	Nights            int               `json:"nights"`
	Adults            int               `json:"adults"`
	Children          int               `json:"children"`
	Rooms             []RoomRefResponse `json:"rooms"`
	Status            string            `json:"status"`
	RawStatus         string            `json:"rawStatus"`
	DocumentsComplete bool              `json:"documentsComplete"`
	Version           int64             `json:"version"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to project booking response")
	}
	if res.Rooms == nil {
		res.Rooms = []RoomRefResponse{}
	}
	return res, nil
}

func FromReservationViews(vs []*queries.ReservationView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		item, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}

type BookingPageResponse struct {
	Items []*BookingResponse `json:"items"`
	Total int                `json:"total"`
	Skip  int                `json:"skip"`
	Limit int                `json:"limit"`
}

func FromReservationPage(p *queries.ReservationPage) (*BookingPageResponse, error) {
	items, err := FromReservationViews(p.Items)
	if err != nil {
		return nil, err
	}
	return &BookingPageResponse{
		Items: items,
		Total: p.Total,
		Skip:  p.Skip,
		Limit: p.Limit,
	}, nil
}

type CheckInResponse struct {
	Booking          *BookingResponse `json:"booking"`
	EarlyCheckIn     bool             `json:"earlyCheckIn"`
	ScheduledCheckIn string           `json:"scheduledCheckIn"`
}

func FromCheckInResult(r *commands.CheckInResult) (*CheckInResponse, error) {
	b, err := FromReservationView(r.Reservation)
	if err != nil {
		return nil, err
	}
	return &CheckInResponse{
		Booking:          b,
		EarlyCheckIn:     r.EarlyCheckIn,
		ScheduledCheckIn: r.ScheduledCheckIn.Format(time.DateOnly),
	}, nil
}

type CheckInPreviewResponse struct {
	DisplayID        string `json:"displayId"`
	Status           string `json:"status"`
	Allowed          bool   `json:"allowed"`
	Reason           string `json:"reason,omitempty"`
	EarlyCheckIn     bool   `json:"earlyCheckIn"`
	ScheduledCheckIn string `json:"scheduledCheckIn"`
	AdvancedTo       string `json:"advancedTo,omitempty"`
	NightsAdvanced   int    `json:"nightsAdvanced"`
}

func FromCheckInPreview(v *queries.CheckInPreviewView) (*CheckInPreviewResponse, error) {
	res := &CheckInPreviewResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to project check-in preview")
	}
	return res, nil
}

type CatalogStatsResponse struct {
	Items         int  `json:"items"`
	Regular       int  `json:"regular"`
	Package       int  `json:"package"`
	RegularLoaded int  `json:"regularLoaded"`
	RegularTotal  int  `json:"regularTotal"`
	HasMore       bool `json:"hasMore"`
}

type CatalogResponse struct {
	Items []*BookingResponse   `json:"items"`
	Stats CatalogStatsResponse `json:"stats"`
}

func FromCatalogView(v *queries.CatalogView) (*CatalogResponse, error) {
	items, err := FromReservationViews(v.Items)
	if err != nil {
		return nil, err
	}
	res := &CatalogResponse{Items: items}
	if err := copier.Copy(&res.Stats, &v.Stats); err != nil {
		return nil, errs.Wrap(err, "failed to project catalog stats")
	}
	return res, nil
}
