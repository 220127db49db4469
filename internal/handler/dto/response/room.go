package response

import (
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	Type          string `json:"type"`
	AdultCapacity int    `json:"adultCapacity"`
	ChildCapacity int    `json:"childCapacity"`
	PriceCents    int64  `json:"priceCents"`
	Price         string `json:"price"`
	Status        string `json:"status"`
}

type AvailabilityResponse struct {
	Mode          string          `json:"mode"`
	CheckIn       string          `json:"checkIn,omitempty"`
	CheckOut      string          `json:"checkOut,omitempty"`
	Nights        int             `json:"nights,omitempty"`
	Rooms         []*RoomResponse `json:"rooms"`
	AdultCapacity int             `json:"adultCapacity"`
	ChildCapacity int             `json:"childCapacity"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	res := &AvailabilityResponse{
		Mode:          v.Mode,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		Nights:        v.Nights,
		Rooms:         make([]*RoomResponse, len(v.Rooms)),
		AdultCapacity: v.AdultCapacity,
		ChildCapacity: v.ChildCapacity,
	}
	for i, r := range v.Rooms {
		res.Rooms[i] = &RoomResponse{}
		if err := copier.Copy(res.Rooms[i], r); err != nil {
			return nil, errs.Wrap(err, "failed to project room response")
		}
	}
	return res, nil
}
