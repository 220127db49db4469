//go:build unit || e2e

package fake

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type StoredEvent struct {
	shared.OutboxEvent
	Status      string
	LastError   string
	PublishedAt time.Time
}

type state struct {
	rooms        map[int64]room.Room
	reservations map[booking.CompositeKey]booking.Reservation
	nextID       map[booking.Origin]int64
	events       []StoredEvent
}

func (s state) clone() state {
	c := state{
		rooms:        make(map[int64]room.Room, len(s.rooms)),
		reservations: make(map[booking.CompositeKey]booking.Reservation, len(s.reservations)),
		nextID:       make(map[booking.Origin]int64, len(s.nextID)),
		events:       slices.Clone(s.events),
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.reservations {
		v.Rooms = slices.Clone(v.Rooms)
		c.reservations[k] = v
	}
	for k, v := range s.nextID {
		c.nextID[k] = v
	}
	return c
}

// UnitOfWork is an in-memory shared.UnitOfWork. Within works on a copy of the
// state and keeps it only when fn succeeds, so failed operations leave no trace.
type UnitOfWork struct {
	mu    sync.Mutex
	state state

	// BeforeUpdate runs inside Update and may return an error to inject failures.
	BeforeUpdate func(r booking.Reservation) error
	Commits      int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{state: state{
		rooms:        map[int64]room.Room{},
		reservations: map[booking.CompositeKey]booking.Reservation{},
		nextID:       map[booking.Origin]int64{},
	}}
}

func (u *UnitOfWork) AddRooms(rooms ...room.Room) *UnitOfWork {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, r := range rooms {
		u.state.rooms[r.ID] = r
	}
	return u
}

func (u *UnitOfWork) Put(rs ...booking.Reservation) *UnitOfWork {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, r := range rs {
		u.state.reservations[r.Key] = r
		u.state.nextID[r.Key.Origin] = max(u.state.nextID[r.Key.Origin], r.Key.LocalID)
	}
	return u
}

func (u *UnitOfWork) Reservation(key booking.CompositeKey) (booking.Reservation, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.state.reservations[key]
	return r, ok
}

func (u *UnitOfWork) Events() []StoredEvent {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.state.events)
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	t := &tx{uow: u, state: u.state.clone()}
	if err := fn(ctx, t); err != nil {
		return err
	}
	u.state = t.state
	u.Commits++
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, nil)
}

type tx struct {
	uow   *UnitOfWork
	state state
}

func (t *tx) DB() pgquery.DBTX                           { return nil }
func (t *tx) Rooms() shared.RoomRepository               { return roomRepo{t} }
func (t *tx) Reservations() shared.ReservationRepository { return reservationRepo{t} }
func (t *tx) Events() shared.EventRepository             { return eventRepo{t} }

type roomRepo struct{ t *tx }

func (r roomRepo) Lock(_ context.Context, _ pgquery.DBTX, ids []int64) ([]room.Room, error) {
	var out []room.Room
	for _, id := range ids {
		if rm, ok := r.t.state.rooms[id]; ok {
			out = append(out, rm)
		}
	}
	slices.SortFunc(out, func(a, b room.Room) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r roomRepo) LockAll(_ context.Context, _ pgquery.DBTX) ([]room.Room, error) {
	out := make([]room.Room, 0, len(r.t.state.rooms))
	for _, rm := range r.t.state.rooms {
		out = append(out, rm)
	}
	slices.SortFunc(out, func(a, b room.Room) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

type reservationRepo struct{ t *tx }

func (r reservationRepo) FindByKey(_ context.Context, _ pgquery.DBTX, key booking.CompositeKey) (booking.Reservation, error) {
	res, ok := r.t.state.reservations[key]
	if !ok {
		return booking.Reservation{}, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	res.Rooms = slices.Clone(res.Rooms)
	return res, nil
}

func (r reservationRepo) EndingAfter(_ context.Context, _ pgquery.DBTX, after time.Time, roomIDs []int64) ([]booking.Reservation, error) {
	var out []booking.Reservation
	for _, res := range r.t.state.reservations {
		if !res.Stay.CheckOut.After(after) {
			continue
		}
		if roomIDs != nil && !slices.ContainsFunc(roomIDs, res.References) {
			continue
		}
		out = append(out, res)
	}
	slices.SortFunc(out, booking.Compare)
	return out, nil
}

func (r reservationRepo) Insert(_ context.Context, _ pgquery.DBTX, res booking.Reservation) (booking.CompositeKey, error) {
	r.t.state.nextID[res.Key.Origin]++
	key := booking.CompositeKey{Origin: res.Key.Origin, LocalID: r.t.state.nextID[res.Key.Origin]}
	res.Key = key
	res.Version = 1
	r.t.state.reservations[key] = res
	return key, nil
}

func (r reservationRepo) Update(_ context.Context, _ pgquery.DBTX, res booking.Reservation) error {
	if hook := r.t.uow.BeforeUpdate; hook != nil {
		if err := hook(res); err != nil {
			return err
		}
	}
	stored, ok := r.t.state.reservations[res.Key]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if stored.Version != res.Version {
		return infra.NewRepoErr(infra.KindStaleVersion, "reservation changed since it was read")
	}
	res.Version++
	r.t.state.reservations[res.Key] = res
	return nil
}

type eventRepo struct{ t *tx }

func (r eventRepo) Append(_ context.Context, _ pgquery.DBTX, e shared.OutboxEvent) error {
	r.t.state.events = append(r.t.state.events, StoredEvent{OutboxEvent: e, Status: pgquery.EventStatusPending})
	return nil
}

func (r eventRepo) Pending(_ context.Context, _ pgquery.DBTX, limit int) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, e := range r.t.state.events {
		if e.Status == pgquery.EventStatusPending && len(out) < limit {
			out = append(out, e.OutboxEvent)
		}
	}
	return out, nil
}

func (r eventRepo) MarkPublished(_ context.Context, _ pgquery.DBTX, id uuid.UUID, at time.Time) error {
	return r.update(id, func(e *StoredEvent) {
		e.Attempts++
		e.Status = pgquery.EventStatusPublished
		e.PublishedAt = at
		e.LastError = ""
	})
}

func (r eventRepo) MarkFailed(_ context.Context, _ pgquery.DBTX, id uuid.UUID, cause error, maxAttempts int) error {
	return r.update(id, func(e *StoredEvent) {
		e.Attempts++
		if cause != nil {
			e.LastError = cause.Error()
		}
		if e.Attempts >= maxAttempts {
			e.Status = pgquery.EventStatusFailed
		}
	})
}

func (r eventRepo) update(id uuid.UUID, fn func(*StoredEvent)) error {
	for i := range r.t.state.events {
		if r.t.state.events[i].ID == id {
			fn(&r.t.state.events[i])
			return nil
		}
	}
	return infra.NewRepoErr(infra.KindNotFound, "booking event not found")
}
