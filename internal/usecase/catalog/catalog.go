package catalog

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/pkg/errs"
)

var (
	ErrRegularFetchFailed = errs.New("failed to fetch regular bookings page")
	ErrPackageFetchFailed = errs.New("failed to fetch package bookings")
)

// Page is one slice of the regular stream plus the server-reported total.
type Page struct {
	Items []booking.Reservation
	Total int
}

type RegularSource interface {
	FetchRegularPage(ctx context.Context, skip, limit int) (Page, error)
}

// PackageSource returns the whole package stream, bounded by limit.
type PackageSource interface {
	FetchPackages(ctx context.Context, limit int) ([]booking.Reservation, error)
}

type Options struct {
	PageSize   int
	PackageCap int
}

type Stats struct {
	Items         int  `json:"items"`
	Regular       int  `json:"regular"`
	Package       int  `json:"package"`
	RegularLoaded int  `json:"regularLoaded"`
	RegularTotal  int  `json:"regularTotal"`
	HasMore       bool `json:"hasMore"`
}

// Catalog merges the paginated regular stream with the bulk package stream into
// one deduplicated, sorted list. Reads may run in parallel; loads are serialized.
type Catalog struct {
	regular  RegularSource
	packages PackageSource
	opts     Options
	logger   *slog.Logger

	loadMu sync.Mutex

	mu            sync.RWMutex
	items         []booking.Reservation
	regularLoaded int
	regularTotal  int
	hasMore       bool
}

func New(regular RegularSource, packages PackageSource, opts Options, logger *slog.Logger) *Catalog {
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if opts.PackageCap <= 0 {
		opts.PackageCap = 500
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{regular: regular, packages: packages, opts: opts, logger: logger}
}

// Reload discards everything and fetches the first regular page and the full package set.
// On failure the previous state is kept.
func (c *Catalog) Reload(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	page, err := c.regular.FetchRegularPage(ctx, 0, c.opts.PageSize)
	if err != nil {
		return errs.Mark(err, ErrRegularFetchFailed)
	}
	pkgs, err := c.packages.FetchPackages(ctx, c.opts.PackageCap)
	if err != nil {
		return errs.Mark(err, ErrPackageFetchFailed)
	}

	items := c.merge(page.Items, pkgs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.regularLoaded = len(page.Items)
	c.setTotal(page)
	return nil
}

// LoadMore appends the next regular page. It returns false without touching any
// state when no regular pages remain.
func (c *Catalog) LoadMore(ctx context.Context) (bool, error) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	c.mu.RLock()
	hasMore, skip := c.hasMore, c.regularLoaded
	c.mu.RUnlock()
	if !hasMore {
		return false, nil
	}

	page, err := c.regular.FetchRegularPage(ctx, skip, c.opts.PageSize)
	if err != nil {
		return false, errs.Mark(err, ErrRegularFetchFailed)
	}

	c.mu.RLock()
	current := c.items
	c.mu.RUnlock()
	items := c.merge(current, page.Items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.regularLoaded += len(page.Items)
	c.setTotal(page)
	return true, nil
}

// setTotal keeps hasMore = loaded < total. An empty page ends the stream even
// when the reported total disagrees, so LoadMore cannot spin. Caller holds mu.
func (c *Catalog) setTotal(page Page) {
	c.regularTotal = page.Total
	if len(page.Items) == 0 && c.regularTotal > c.regularLoaded {
		c.regularTotal = c.regularLoaded
	}
	c.hasMore = c.regularLoaded < c.regularTotal
}

func (c *Catalog) merge(batches ...[]booking.Reservation) []booking.Reservation {
	merged, collisions := booking.MergeAll(batches...)
	for _, err := range collisions {
		c.logger.Warn("identity collision while merging catalog", "error", err.Error())
	}
	booking.SortCatalog(merged)
	return merged
}

func (c *Catalog) Items() []booking.Reservation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Catalog) HasMore() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hasMore
}

func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := Stats{
		Items:         len(c.items),
		RegularLoaded: c.regularLoaded,
		RegularTotal:  c.regularTotal,
		HasMore:       c.hasMore,
	}
	for _, r := range c.items {
		if r.Key.Origin == booking.OriginPackage {
			s.Package++
		} else {
			s.Regular++
		}
	}
	return s
}
