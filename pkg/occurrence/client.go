// Package occurrence resolves taxa, collects occurrence records near a point
// and aggregates them into a ranked list of species.
package occurrence

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Client orchestrates taxon resolution, paginated occurrence search,
// aggregation and caching.
type Client struct {
	svc     flora.OccurrenceService
	cache   flora.Cache
	cfg     config.GBIFConfig
	limiter *rate.Limiter
	group   singleflight.Group
	quiet   bool

	mu      sync.Mutex
	flights map[string]*flight
	gen     uint64
}

// flight is a retrieval shared by concurrent callers of the same query.
// Its context does not depend on any single caller and is cancelled when
// the last waiting caller leaves.
type flight struct {
	id      string
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Option modifies a Client.
type Option func(*Client)

// OptQuiet disables progress bars and user messages.
func OptQuiet(b bool) Option {
	return func(c *Client) {
		c.quiet = b
	}
}

// New creates a Client. The cache is owned by the caller and can be shared
// between clients.
func New(
	svc flora.OccurrenceService,
	cache flora.Cache,
	cfg *config.Config,
	opts ...Option,
) *Client {
	delay := time.Duration(cfg.GBIF.PageDelayMs) * time.Millisecond
	res := &Client{
		svc:     svc,
		cache:   cache,
		cfg:     cfg.GBIF,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		flights: make(map[string]*flight),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// SearchResult is the outcome of SpeciesList.
type SearchResult struct {
	// Taxon is empty when results come from the cache.
	Taxon flora.Taxon

	// ResolveErr is set if the taxon name could not be resolved. In this
	// case Species is empty and nothing is cached.
	ResolveErr error

	Species []flora.SpeciesAggregate

	// Records is the number of occurrence records retrieved.
	Records int

	// Completion tells why pagination stopped. It is empty for cached
	// results and resolution failures.
	Completion flora.Completion

	// FetchErr is the error that stopped pagination.
	FetchErr error

	FromCache bool
}

// ResolveTaxon matches a name against the backbone taxonomy.
func (c *Client) ResolveTaxon(
	ctx context.Context,
	name string,
) (flora.Taxon, error) {
	res, err := c.svc.MatchName(ctx, name)
	if err != nil {
		return flora.Taxon{}, TaxonResolutionError(name, c.cfg.Kingdom, err)
	}
	return res, nil
}

// SearchOccurrences collects records of a taxon within radiusKm of a
// point.
func (c *Client) SearchOccurrences(
	ctx context.Context,
	taxonKey int,
	lat, lon, radiusKm float64,
) FetchResult {
	params := flora.SearchParams{
		TaxonKey: taxonKey,
		BBox:     NewBBox(lat, lon, radiusKm),
	}
	return c.fetch(ctx, params)
}

// SpeciesList returns species of a taxon observed near a point, ranked by
// the number of records. The cache is checked before any network request.
// Concurrent calls with the same query share one retrieval. A caller that
// cancels its context stops waiting, the shared retrieval goes on while
// other callers wait for it.
func (c *Client) SpeciesList(
	ctx context.Context,
	q flora.Query,
) SearchResult {
	if err := ctx.Err(); err != nil {
		return canceled(err)
	}

	key := q.CacheKey()
	if res, ok := c.fromCache(ctx, key); ok {
		return res
	}

	f := c.join(ctx, key)
	defer c.leave(key, f)

	ch := c.group.DoChan(f.id, func() (any, error) {
		// another caller might have filled the cache meanwhile
		if res, ok := c.fromCache(f.ctx, key); ok {
			return res, nil
		}
		return c.retrieve(f.ctx, q, key), nil
	})

	select {
	case r := <-ch:
		return r.Val.(SearchResult)
	case <-ctx.Done():
		slog.Warn("Occurrence search abandoned by caller",
			"key", key, "error", ctx.Err())
		return canceled(ctx.Err())
	}
}

func canceled(err error) SearchResult {
	return SearchResult{
		Completion: flora.Failed,
		FetchErr:   OccurrenceFetchError(0, err),
	}
}

// join registers a caller of the query, creating a new flight if none is
// running.
func (c *Client) join(ctx context.Context, key string) *flight {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.flights[key]
	if !ok {
		c.gen++
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{
			id:     key + "#" + strconv.FormatUint(c.gen, 10),
			ctx:    fctx,
			cancel: cancel,
		}
		c.flights[key] = f
	}
	f.waiters++
	return f
}

// leave unregisters a caller. When nobody waits for the flight anymore,
// its retrieval is cancelled and the next caller starts a new one.
func (c *Client) leave(key string, f *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if c.flights[key] == f {
		delete(c.flights, key)
	}
}

func (c *Client) fromCache(ctx context.Context, key string) (SearchResult, bool) {
	species, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Cannot read occurrence cache", "key", key, "error", err)
		return SearchResult{}, false
	}
	if !ok {
		return SearchResult{}, false
	}

	slog.Info("Occurrence cache hit", "key", key, "species", len(species))
	c.info("Using cached occurrence data for this location")
	return SearchResult{Species: species, FromCache: true}, true
}

func (c *Client) retrieve(
	ctx context.Context,
	q flora.Query,
	key string,
) SearchResult {
	var res SearchResult

	c.info(
		"Searching GBIF for <em>%s</em> within %skm of (%.4f, %.4f)",
		q.TaxonName, humanize.Ftoa(q.RadiusKm), q.Latitude, q.Longitude,
	)

	taxon, err := c.ResolveTaxon(ctx, q.TaxonName)
	if err != nil {
		slog.Warn("Taxon resolution failed", "name", q.TaxonName, "error", err)
		res.ResolveErr = err
		return res
	}
	res.Taxon = taxon
	c.info(
		"GBIF matched <em>%s</em> (Rank: %s)",
		taxon.ScientificName, taxon.Rank,
	)
	if cl := taxon.Classification(); cl != "" {
		c.info("Classification: %s", cl)
	}

	fr := c.SearchOccurrences(
		ctx, taxon.UsageKey, q.Latitude, q.Longitude, q.RadiusKm,
	)
	res.Records = len(fr.Records)
	res.Completion = fr.Completion
	res.FetchErr = fr.Err
	res.Species = Aggregate(fr.Records)

	slog.Info("Occurrence search finished",
		"key", key,
		"records", res.Records,
		"species", len(res.Species),
		"pages", fr.Pages,
		"completion", fr.Completion,
	)
	if fr.Err != nil && !c.quiet {
		gn.PrintErrorMessage(fr.Err)
	}
	c.info(
		"Found %s unique species from %s records",
		humanize.Comma(int64(len(res.Species))),
		humanize.Comma(int64(res.Records)),
	)

	// A failure before the first record tells nothing about the area,
	// it is not cached so the search can be repeated. Neither are results
	// cut short by cancellation.
	if fr.Completion == flora.Failed &&
		(len(fr.Records) == 0 || ctx.Err() != nil) {
		return res
	}

	if err = c.cache.Set(ctx, key, res.Species); err != nil {
		slog.Warn("Cannot write occurrence cache", "key", key, "error", err)
	}
	return res
}

func (c *Client) info(msg string, vars ...any) {
	if c.quiet {
		return
	}
	gn.Info(msg, vars...)
}
