package queries

import (
	"context"
	"log/slog"
	"math"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/catalog"
)

type ReservationReadStore interface {
	FindByKey(ctx context.Context, key booking.CompositeKey) (booking.Reservation, error)
	// ListPage returns one page of an origin's stream, newest first, with the stream total.
	ListPage(ctx context.Context, origin booking.Origin, skip, limit int) ([]booking.Reservation, int, error)
	// EndingAfter returns reservations of both origins whose check-out is after the date.
	EndingAfter(ctx context.Context, after time.Time) ([]booking.Reservation, error)
}

type RoomReadStore interface {
	List(ctx context.Context) ([]room.Room, error)
}

type BookingQueries interface {
	GetByDisplayID(ctx context.Context, displayID string) (*ReservationView, error)
	ListRegular(ctx context.Context, skip, limit int) (*ReservationPage, error)
	ListPackages(ctx context.Context) ([]*ReservationView, error)
	Catalog(ctx context.Context, limit, pages int) (*CatalogView, error)
	Availability(ctx context.Context, q booking.AvailabilityQuery) (*AvailabilityView, error)
	CheckInPreview(ctx context.Context, displayID string) (*CheckInPreviewView, error)
}

type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	PackageCap      int
}

type bookingQueriesImpl struct {
	reservations ReservationReadStore
	rooms        RoomReadStore
	clock        clock.Clock
	opts         Options
	logger       *slog.Logger
}

func NewBookingQueries(reservations ReservationReadStore, rooms RoomReadStore, clk clock.Clock, opts Options, logger *slog.Logger) BookingQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingQueriesImpl{
		reservations: reservations,
		rooms:        rooms,
		clock:        clk,
		opts:         opts,
		logger:       logger,
	}
}

func (q *bookingQueriesImpl) find(ctx context.Context, displayID string) (booking.Reservation, error) {
	key, err := booking.ParseDisplayID(displayID)
	if err != nil {
		return booking.Reservation{}, err
	}
	r, err := q.reservations.FindByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Reservation{}, errs.Mark(err, booking.ErrReservationNotFound)
		}
		return booking.Reservation{}, err
	}
	return r, nil
}

func (q *bookingQueriesImpl) GetByDisplayID(ctx context.Context, displayID string) (*ReservationView, error) {
	r, err := q.find(ctx, displayID)
	if err != nil {
		return nil, err
	}
	return NewReservationView(r), nil
}

func (q *bookingQueriesImpl) ListRegular(ctx context.Context, skip, limit int) (*ReservationPage, error) {
	limit = ValidateLimit(limit, q.opts.DefaultPageSize, q.opts.MaxPageSize)
	skip = min(max(skip, 0), math.MaxInt32)

	items, total, err := q.reservations.ListPage(ctx, booking.OriginRegular, skip, limit)
	if err != nil {
		return nil, err
	}
	return &ReservationPage{
		Items: NewReservationViews(items),
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

func (q *bookingQueriesImpl) ListPackages(ctx context.Context) ([]*ReservationView, error) {
	items, _, err := q.reservations.ListPage(ctx, booking.OriginPackage, 0, q.packageCap())
	if err != nil {
		return nil, err
	}
	return NewReservationViews(items), nil
}

// Catalog builds a fresh merged catalog: one reload, then pages-1 load-more rounds.
func (q *bookingQueriesImpl) Catalog(ctx context.Context, limit, pages int) (*CatalogView, error) {
	limit = ValidateLimit(limit, q.opts.DefaultPageSize, q.opts.MaxPageSize)
	pages = max(pages, 1)

	c := catalog.New(
		regularStream{store: q.reservations},
		packageStream{store: q.reservations},
		catalog.Options{PageSize: limit, PackageCap: q.packageCap()},
		q.logger,
	)
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	for i := 1; i < pages; i++ {
		more, err := c.LoadMore(ctx)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return &CatalogView{
		Items: NewReservationViews(c.Items()),
		Stats: c.Stats(),
	}, nil
}

func (q *bookingQueriesImpl) Availability(ctx context.Context, aq booking.AvailabilityQuery) (*AvailabilityView, error) {
	// only a missing date may fall back to status mode
	intervalMode := aq.Interval != nil && aq.Interval.Complete()
	if intervalMode {
		if err := aq.Interval.Validate(); err != nil {
			return nil, err
		}
	}

	rooms, err := q.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{Mode: AvailabilityModeStatus}
	var reservations []booking.Reservation
	if intervalMode {
		view.Mode = AvailabilityModeInterval
		view.CheckIn = formatDate(aq.Interval.CheckIn)
		view.CheckOut = formatDate(aq.Interval.CheckOut)
		view.Nights = aq.Interval.Nights()

		reservations, err = q.reservations.EndingAfter(ctx, aq.Interval.CheckIn)
		if err != nil {
			return nil, err
		}
	}

	free := booking.ResolveAvailable(aq, reservations, rooms)
	view.Rooms = make([]*RoomView, len(free))
	for i, r := range free {
		view.Rooms[i] = NewRoomView(r)
		view.AdultCapacity += r.AdultCapacity
		view.ChildCapacity += r.ChildCapacity
	}
	return view, nil
}

func (q *bookingQueriesImpl) CheckInPreview(ctx context.Context, displayID string) (*CheckInPreviewView, error) {
	r, err := q.find(ctx, displayID)
	if err != nil {
		return nil, err
	}

	w := booking.PreviewCheckIn(r, q.clock.Now())
	view := &CheckInPreviewView{
		DisplayID:        r.DisplayID(),
		Status:           r.Status().String(),
		Allowed:          true,
		EarlyCheckIn:     w.Required,
		ScheduledCheckIn: formatDate(w.ScheduledCheckIn),
		NightsAdvanced:   w.NightsAdvanced,
	}
	if w.Required {
		view.AdvancedTo = formatDate(w.AdvancedTo)
	}
	if gerr := booking.Guard(booking.OpCheckIn, r.RawStatus); gerr != nil {
		view.Allowed = false
		view.Reason = gerr.Error()
	}
	return view, nil
}

func (q *bookingQueriesImpl) packageCap() int {
	if q.opts.PackageCap > 0 {
		return q.opts.PackageCap
	}
	return 500
}

type regularStream struct {
	store ReservationReadStore
}

func (s regularStream) FetchRegularPage(ctx context.Context, skip, limit int) (catalog.Page, error) {
	items, total, err := s.store.ListPage(ctx, booking.OriginRegular, skip, limit)
	if err != nil {
		return catalog.Page{}, err
	}
	return catalog.Page{Items: items, Total: total}, nil
}

type packageStream struct {
	store ReservationReadStore
}

func (s packageStream) FetchPackages(ctx context.Context, limit int) ([]booking.Reservation, error) {
	items, _, err := s.store.ListPage(ctx, booking.OriginPackage, 0, limit)
	return items, err
}
