package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Origin      string
	Kind        string
	PackageName string
	Guest       booking.Guest
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	RoomIDs     []int64
}

type CheckInResult struct {
	Reservation  *queries.ReservationView
	EarlyCheckIn bool
	// ScheduledCheckIn is the check-in date before it was advanced to today.
	ScheduledCheckIn time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, displayID string, docs booking.Documents) (*CheckInResult, error)
	Extend(ctx context.Context, displayID string, newCheckOut time.Time) (*queries.ReservationView, error)
	Cancel(ctx context.Context, displayID string) (*queries.ReservationView, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*queries.ReservationView, error) {
	origin, err := booking.ParseOrigin(req.Origin)
	if err != nil {
		return nil, err
	}
	kind, err := booking.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	interval, err := booking.NewInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	spec := booking.CreateSpec{
		Origin:      origin,
		Kind:        kind,
		PackageName: req.PackageName,
		Guest:       req.Guest,
		Stay:        booking.Stay{Interval: interval, Adults: req.Adults, Children: req.Children},
		RoomIDs:     req.RoomIDs,
	}

	var created booking.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var rooms []room.Room
		var lerr error
		if kind == booking.KindWholeProperty {
			rooms, lerr = tx.Rooms().LockAll(ctx, tx.DB())
		} else {
			rooms, lerr = tx.Rooms().Lock(ctx, tx.DB(), sortedUnique(req.RoomIDs))
		}
		if lerr != nil {
			return lerr
		}

		var held []booking.Reservation
		if len(rooms) > 0 {
			held, lerr = tx.Reservations().EndingAfter(ctx, tx.DB(), interval.CheckIn, roomIDs(rooms))
			if lerr != nil {
				return lerr
			}
		}

		now := uc.clock.Now()
		res, derr := booking.Create(spec, booking.Snapshot{Rooms: rooms, Reservations: held}, now)
		if derr != nil {
			return derr
		}

		key, derr := tx.Reservations().Insert(ctx, tx.DB(), res)
		if derr != nil {
			return derr
		}
		res.Key = key
		res.Version = 1

		created = res
		return uc.appendEvent(ctx, tx, shared.EventBookingCreated, res, now)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking created",
		"display_id", created.DisplayID(),
		"stay", created.Stay.Interval.String(),
		"rooms", created.RoomIDs())
	return queries.NewReservationView(created), nil
}

func (uc *bookingCommandsImpl) CheckIn(ctx context.Context, displayID string, docs booking.Documents) (*CheckInResult, error) {
	var result booking.CheckInResult
	var scheduled time.Time
	updated, err := uc.mutate(ctx, displayID, shared.EventBookingCheckedIn,
		func(ctx context.Context, tx shared.Tx, r booking.Reservation, now time.Time) (booking.Reservation, error) {
			res, derr := booking.CheckIn(r, docs, now)
			if derr != nil {
				return booking.Reservation{}, derr
			}
			if res.AdvancedNights != nil {
				if derr = uc.ensureFree(ctx, tx, r, *res.AdvancedNights); derr != nil {
					return booking.Reservation{}, derr
				}
			}
			result = res
			scheduled = r.Stay.CheckIn
			return res.Reservation, nil
		})
	if err != nil {
		return nil, err
	}

	if result.EarlyCheckIn {
		uc.logger.Info("early check-in moved stay start",
			"display_id", updated.DisplayID(),
			"scheduled", scheduled.Format(time.DateOnly),
			"advanced_to", updated.Stay.CheckIn.Format(time.DateOnly))
	}
	return &CheckInResult{
		Reservation:      queries.NewReservationView(updated),
		EarlyCheckIn:     result.EarlyCheckIn,
		ScheduledCheckIn: scheduled,
	}, nil
}

func (uc *bookingCommandsImpl) Extend(ctx context.Context, displayID string, newCheckOut time.Time) (*queries.ReservationView, error) {
	updated, err := uc.mutate(ctx, displayID, shared.EventBookingExtended,
		func(ctx context.Context, tx shared.Tx, r booking.Reservation, now time.Time) (booking.Reservation, error) {
			res, derr := booking.Extend(r, newCheckOut, now)
			if derr != nil {
				return booking.Reservation{}, derr
			}
			if derr = uc.ensureFree(ctx, tx, r, res.Extension); derr != nil {
				return booking.Reservation{}, derr
			}
			return res.Reservation, nil
		})
	if err != nil {
		return nil, err
	}
	return queries.NewReservationView(updated), nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, displayID string) (*queries.ReservationView, error) {
	updated, err := uc.mutate(ctx, displayID, shared.EventBookingCancelled,
		func(_ context.Context, _ shared.Tx, r booking.Reservation, now time.Time) (booking.Reservation, error) {
			return booking.Cancel(r, now)
		})
	if err != nil {
		return nil, err
	}
	return queries.NewReservationView(updated), nil
}

type mutation func(ctx context.Context, tx shared.Tx, r booking.Reservation, now time.Time) (booking.Reservation, error)

// mutate loads the reservation, applies fn and writes it back under optimistic versioning.
func (uc *bookingCommandsImpl) mutate(ctx context.Context, displayID string, event shared.EventType, fn mutation) (booking.Reservation, error) {
	key, err := booking.ParseDisplayID(displayID)
	if err != nil {
		return booking.Reservation{}, err
	}

	var updated booking.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reservations().FindByKey(ctx, tx.DB(), key)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, booking.ErrReservationNotFound)
			}
			return derr
		}

		now := uc.clock.Now()
		next, derr := fn(ctx, tx, current, now)
		if derr != nil {
			return derr
		}

		if derr = tx.Reservations().Update(ctx, tx.DB(), next); derr != nil {
			if infra.IsKind(derr, infra.KindStaleVersion) {
				return errs.Mark(derr, booking.ErrStaleReservation)
			}
			return derr
		}
		next.Version++

		updated = next
		return uc.appendEvent(ctx, tx, event, next, now)
	})
	if err != nil {
		return booking.Reservation{}, err
	}
	return updated, nil
}

// ensureFree locks r's rooms and re-checks the given nights against every other active stay.
func (uc *bookingCommandsImpl) ensureFree(ctx context.Context, tx shared.Tx, r booking.Reservation, nights booking.Interval) error {
	ids := sortedUnique(r.RoomIDs())
	if len(ids) == 0 {
		return nil
	}
	if _, err := tx.Rooms().Lock(ctx, tx.DB(), ids); err != nil {
		return err
	}
	held, err := tx.Reservations().EndingAfter(ctx, tx.DB(), nights.CheckIn, ids)
	if err != nil {
		return err
	}
	return booking.EnsureRoomsFree(nights, ids, held, &r.Key)
}

type eventPayload struct {
	Type        shared.EventType         `json:"type"`
	Key         string                   `json:"key"`
	DisplayID   string                   `json:"displayId"`
	Status      string                   `json:"status"`
	OccurredAt  time.Time                `json:"occurredAt"`
	Reservation *queries.ReservationView `json:"reservation"`
}

func (uc *bookingCommandsImpl) appendEvent(ctx context.Context, tx shared.Tx, t shared.EventType, r booking.Reservation, now time.Time) error {
	payload, err := json.Marshal(eventPayload{
		Type:        t,
		Key:         r.Key.String(),
		DisplayID:   r.DisplayID(),
		Status:      r.Status().String(),
		OccurredAt:  now,
		Reservation: queries.NewReservationView(r),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	return tx.Events().Append(ctx, tx.DB(), shared.OutboxEvent{
		ID:        uuid.New(),
		Type:      t,
		Key:       r.Key.String(),
		DisplayID: r.DisplayID(),
		Payload:   payload,
		CreatedAt: now,
	})
}

func sortedUnique(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

func roomIDs(rooms []room.Room) []int64 {
	ids := make([]int64, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}
