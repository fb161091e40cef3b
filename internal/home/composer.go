package home

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/smarket/storefront-bff/internal/banner"
	"github.com/smarket/storefront-bff/internal/carousel"
	"github.com/smarket/storefront-bff/internal/collection"
	"github.com/smarket/storefront-bff/internal/config"
	"github.com/smarket/storefront-bff/internal/flashdeal"
)

// Composer assembles the storefront homepage: the banner carousel, the
// ordered collection spotlights and the flash-deal strip. It holds its own
// copy of the fetched content and owns every rotation timer, so discarding
// the composer tears all of them down.
type Composer struct {
	banners     *banner.Service
	collections *collection.Service
	deals       *flashdeal.Service
	clk         clock.Clock
	cfg         config.HomeConfig

	mu              sync.Mutex
	bannerItems     []banner.BannerItem
	collectionItems []collection.Collection
	dealSection     *flashdeal.Section

	bannerStrip   *carousel.IndexStrip
	categoryStrip *carousel.OffsetStrip
	dealStrip     *carousel.OffsetStrip
	countdown     *flashdeal.Countdown
}

func NewComposer(
	banners *banner.Service,
	collections *collection.Service,
	deals *flashdeal.Service,
	clk clock.Clock,
	cfg config.HomeConfig,
) *Composer {
	c := &Composer{
		banners:     banners,
		collections: collections,
		deals:       deals,
		clk:         clk,
		cfg:         cfg,
		countdown:   flashdeal.NewCountdown(clk),
	}
	c.bannerStrip = carousel.NewIndexStrip(clk, cfg.BannerInterval(), 0)
	c.categoryStrip = c.newCategoryStrip(0)
	c.dealStrip = c.newDealStrip(0)
	return c
}

// Refresh fetches all three content sources concurrently and replaces the
// held view. A widget whose fetch fails renders its empty state; the others
// are unaffected. Strips whose input changed get their timer torn down and a
// fresh one armed.
func (c *Composer) Refresh(ctx context.Context) {
	var (
		bannerItems     []banner.BannerItem
		collectionItems []collection.Collection
		dealSection     *flashdeal.Section
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bannerItems = c.banners.List(gctx)
		return nil
	})
	g.Go(func() error {
		collectionItems = c.collections.ListPublic(gctx)
		return nil
	})
	g.Go(func() error {
		sec, err := c.deals.LoadEnabled(gctx)
		if err == nil {
			dealSection = &sec
		} else if !errors.Is(err, flashdeal.ErrNoCampaign) {
			log.Warnf("failed to load flash deals: %v", err)
		}
		return nil
	})
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !bannersEqual(c.bannerItems, bannerItems) {
		c.bannerStrip.Stop()
		c.bannerStrip = carousel.NewIndexStrip(c.clk, c.cfg.BannerInterval(), len(bannerItems))
	}
	c.bannerItems = bannerItems

	if !collectionsEqual(c.collectionItems, collectionItems) {
		c.categoryStrip.Stop()
		c.categoryStrip = c.newCategoryStrip(len(collectionItems))
	}
	c.collectionItems = collectionItems

	if !sectionsEqual(c.dealSection, dealSection) {
		c.dealStrip.Stop()
		if dealSection != nil {
			c.dealStrip = c.newDealStrip(len(dealSection.Deals))
			c.countdown.Set(dealSection.EndTime)
		} else {
			c.dealStrip = c.newDealStrip(0)
			c.countdown.Set(time.Time{})
		}
	}
	c.dealSection = dealSection
}

// DropCollection removes a deleted collection from the held view without a
// refetch. The spotlight strip is re-armed against the shorter list.
func (c *Composer) DropCollection(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]collection.Collection, 0, len(c.collectionItems))
	for _, col := range c.collectionItems {
		if col.ID != id {
			kept = append(kept, col)
		}
	}
	if len(kept) == len(c.collectionItems) {
		return
	}
	c.collectionItems = kept
	c.categoryStrip.Stop()
	c.categoryStrip = c.newCategoryStrip(len(kept))
}

// Banners returns the banner strip controller.
func (c *Composer) Banners() *carousel.IndexStrip {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bannerStrip
}

// DealStrip returns the deal strip controller.
func (c *Composer) DealStrip() *carousel.OffsetStrip {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dealStrip
}

// CategoryStrip returns the spotlight strip controller.
func (c *Composer) CategoryStrip() *carousel.OffsetStrip {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categoryStrip
}

// Close cancels every timer owned by the composer.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bannerStrip.Stop()
	c.categoryStrip.Stop()
	c.dealStrip.Stop()
	c.countdown.Stop()
}

func (c *Composer) newCategoryStrip(count int) *carousel.OffsetStrip {
	return carousel.NewOffsetStrip(c.clk, carousel.OffsetConfig{
		Interval:  c.cfg.CategoryInterval(),
		ItemCount: count,
		ItemWidth: c.cfg.CategoryItemWidth,
		Viewport:  c.cfg.ViewportWidth,
		Step:      c.cfg.CategoryStep,
		Pausable:  false,
	})
}

func (c *Composer) newDealStrip(count int) *carousel.OffsetStrip {
	return carousel.NewOffsetStrip(c.clk, carousel.OffsetConfig{
		Interval:       c.cfg.DealInterval(),
		ItemCount:      count,
		ItemWidth:      c.cfg.DealItemWidth,
		Viewport:       c.cfg.ViewportWidth,
		StepFactor:     c.cfg.DealStepFactor,
		HalfStepMargin: true,
		Pausable:       true,
	})
}

func bannersEqual(a, b []banner.BannerItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func collectionsEqual(a, b []collection.Collection) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func sectionsEqual(a, b *flashdeal.Section) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && len(a.Deals) == len(b.Deals) &&
		a.Enabled == b.Enabled && a.EndTime.Equal(b.EndTime)
}
