package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Arjun-733/OfferSphere/metrics"
	"github.com/Arjun-733/OfferSphere/models"
	"github.com/Arjun-733/OfferSphere/utils"
)

// OfferFetcher is implemented by the offers API client.
type OfferFetcher interface {
	FetchOffers(ctx context.Context) ([]*models.Offer, error)
}

// snapshot is one complete, immutable view of the offer catalog. Every refresh
// builds a new snapshot and swaps it in whole; nothing mutates one in place,
// so readers never observe a half-updated catalog.
type snapshot struct {
	offers    []*models.Offer
	byProduct map[string][]*models.Offer
	fetchedAt time.Time
}

// Catalog holds the authoritative offer set, refreshed from the offers API on
// a fixed interval. There is a single writer (the refresh loop) and any number
// of readers; the snapshot pointer swap is the only synchronization needed.
type Catalog struct {
	fetcher  OfferFetcher
	interval time.Duration

	snap   atomic.Pointer[snapshot]
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a catalog backed by fetcher. It starts out empty; call Start to
// load offers and keep them fresh, or Refresh for a one-off load.
func New(fetcher OfferFetcher, interval time.Duration) *Catalog {
	c := &Catalog{
		fetcher:  fetcher,
		interval: interval,
	}
	c.snap.Store(&snapshot{byProduct: map[string][]*models.Offer{}})
	return c
}

// Start runs an immediate refresh and then refreshes on the configured
// interval until Stop is called. It does not block the caller; the initial
// refresh happens on the background goroutine too, so a slow offers API never
// delays startup.
func (c *Catalog) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)

		if err := c.Refresh(ctx); err != nil {
			utils.LogError("Initial offer refresh failed: %v", err)
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.Refresh(ctx); err != nil {
					utils.LogError("Offer refresh failed, keeping previous snapshot: %v", err)
				}
			}
		}
	}()

	utils.LogInfo("Offer catalog started, refreshing every %v", c.interval)
}

// Stop cancels the refresh loop and waits for it to exit.
func (c *Catalog) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	utils.LogInfo("Offer catalog stopped")
}

// Refresh fetches the offer list and swaps in a fresh snapshot on success.
// On failure the previous snapshot stays in place; stale offers beat no
// offers. The error is returned for logging, never surfaced to the UI.
func (c *Catalog) Refresh(ctx context.Context) error {
	start := time.Now()

	offers, err := c.fetcher.FetchOffers(ctx)
	if err != nil {
		metrics.RecordRefresh("failure", time.Since(start).Seconds())
		return utils.FetchError(err)
	}

	now := time.Now()
	next := &snapshot{
		offers:    offers,
		byProduct: BuildIndex(filterActive(offers, now)),
		fetchedAt: now,
	}
	c.snap.Store(next)

	metrics.RecordRefresh("success", time.Since(start).Seconds())
	metrics.SnapshotOffers.Set(float64(len(offers)))
	utils.LogInfo("Offer catalog refreshed: %d offers, %d products with offers",
		len(offers), len(next.byProduct))
	return nil
}

// ActiveOffers returns the offers valid at now, filtered fresh from the
// current snapshot. The result is a new slice; callers may hold it across a
// refresh and still see one consistent fetch.
func (c *Catalog) ActiveOffers(now time.Time) []*models.Offer {
	return filterActive(c.snap.Load().offers, now)
}

// OffersFor returns the currently indexed offers targeting productID, best
// first. Global offers are deliberately not included here; only
// product-scoped offers produce per-product entries.
func (c *Catalog) OffersFor(productID string) []*models.Offer {
	return c.snap.Load().byProduct[productID]
}

// BestOfferFor returns the highest-value offer targeting productID, or nil
// when the product has none.
func (c *Catalog) BestOfferFor(productID string) *models.Offer {
	offers := c.OffersFor(productID)
	if len(offers) == 0 {
		return nil
	}
	return offers[0]
}

// LastRefreshed returns when the current snapshot was fetched; the zero time
// means no refresh has succeeded yet.
func (c *Catalog) LastRefreshed() time.Time {
	return c.snap.Load().fetchedAt
}

func filterActive(offers []*models.Offer, now time.Time) []*models.Offer {
	active := make([]*models.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.ActiveAt(now) {
			active = append(active, offer)
		}
	}
	return active
}
