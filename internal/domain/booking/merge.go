package booking

import (
	"cmp"
	"slices"
	"time"

	"hotel-booking-core/internal/pkg/patch"
)

// Merge folds newer into older as a deep field-union: non-zero fields of newer win,
// zero fields keep what older already had. The rooms list is replaced only by a
// non-empty newer list. The returned error is an *IdentityCollisionError when both
// records carry different creation times; the merged record is valid either way.
func Merge(older, newer Reservation) (Reservation, error) {
	var collision error
	if !older.CreatedAt.IsZero() && !newer.CreatedAt.IsZero() && !older.CreatedAt.Equal(newer.CreatedAt) {
		collision = &IdentityCollisionError{Key: newer.Key, Field: "created_at"}
	}

	m := older.clone()
	m.Kind = patch.PreferNonZero(newer.Kind, older.Kind)
	m.PackageName = patch.PreferNonZero(newer.PackageName, older.PackageName)
	m.Guest = Guest{
		Name:   patch.PreferNonZero(newer.Guest.Name, older.Guest.Name),
		Mobile: patch.PreferNonZero(newer.Guest.Mobile, older.Guest.Mobile),
		Email:  patch.PreferNonZero(newer.Guest.Email, older.Guest.Email),
	}
	m.Stay = Stay{
		Interval: Interval{
			CheckIn:  preferTime(newer.Stay.CheckIn, older.Stay.CheckIn),
			CheckOut: preferTime(newer.Stay.CheckOut, older.Stay.CheckOut),
		},
		Adults:   patch.PreferNonZero(newer.Stay.Adults, older.Stay.Adults),
		Children: patch.PreferNonZero(newer.Stay.Children, older.Stay.Children),
	}
	if len(newer.Rooms) > 0 {
		m.Rooms = slices.Clone(newer.Rooms)
	}
	m.RawStatus = patch.PreferNonZero(newer.RawStatus, older.RawStatus)
	m.Documents = Documents{
		IdentityDocument: patch.PreferNonZero(newer.Documents.IdentityDocument, older.Documents.IdentityDocument),
		RegistrationForm: patch.PreferNonZero(newer.Documents.RegistrationForm, older.Documents.RegistrationForm),
	}
	m.Version = max(newer.Version, older.Version)
	m.CreatedAt = preferTime(newer.CreatedAt, older.CreatedAt)
	if newer.UpdatedAt.After(older.UpdatedAt) {
		m.UpdatedAt = newer.UpdatedAt
	}
	return m, collision
}

func preferTime(newer, older time.Time) time.Time {
	if newer.IsZero() {
		return older
	}
	return newer
}

// MergeAll deduplicates batches by CompositeKey, later observations folding into
// earlier ones. First-seen order is kept; callers sort with SortCatalog.
func MergeAll(batches ...[]Reservation) ([]Reservation, []error) {
	var (
		out        []Reservation
		collisions []error
		index      = make(map[CompositeKey]int)
	)
	for _, batch := range batches {
		for _, r := range batch {
			i, seen := index[r.Key]
			if !seen {
				index[r.Key] = len(out)
				out = append(out, r.clone())
				continue
			}
			merged, err := Merge(out[i], r)
			if err != nil {
				collisions = append(collisions, err)
			}
			out[i] = merged
		}
	}
	return out, collisions
}

// Compare orders by status priority, then LocalID descending, then Regular before Package.
func Compare(a, b Reservation) int {
	if c := cmp.Compare(a.Status().Priority(), b.Status().Priority()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Key.LocalID, a.Key.LocalID); c != 0 {
		return c
	}
	return cmp.Compare(a.Key.Origin.rank(), b.Key.Origin.rank())
}

func SortCatalog(rs []Reservation) {
	slices.SortStableFunc(rs, Compare)
}
