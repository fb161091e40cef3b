package home

import (
	"time"

	"github.com/smarket/storefront-bff/internal/banner"
	"github.com/smarket/storefront-bff/internal/carousel"
	"github.com/smarket/storefront-bff/internal/collection"
	"github.com/smarket/storefront-bff/internal/flashdeal"
)

// StripView is the rotation state of an offset strip.
type StripView struct {
	Offset    float64 `json:"offset"`
	MaxScroll float64 `json:"maxScroll"`
	Direction int     `json:"direction"`
	State     string  `json:"state"`
}

// BannerView is the top carousel with its current slide.
type BannerView struct {
	Items        []banner.BannerItem `json:"items"`
	CurrentIndex int                 `json:"currentIndex"`
	State        string              `json:"state"`
}

// CollectionsView is the ordered spotlight strip.
type CollectionsView struct {
	Items []collection.Collection `json:"items"`
	Strip StripView               `json:"strip"`
}

// FlashDealsView is the flash-deal strip with its countdown. Available false
// is the explicit "no campaign configured" empty state.
type FlashDealsView struct {
	Available bool                 `json:"available"`
	Title     string               `json:"title,omitempty"`
	Subtitle  string               `json:"subtitle,omitempty"`
	Deals     []flashdeal.DealItem `json:"deals,omitempty"`
	EndTime   *time.Time           `json:"endTime,omitempty"`
	TimeLeft  string               `json:"timeLeft,omitempty"`
	Strip     StripView            `json:"strip"`
}

// View is the composed homepage document.
type View struct {
	Banners     BannerView      `json:"banners"`
	Collections CollectionsView `json:"collections"`
	FlashDeals  FlashDealsView  `json:"flashDeals"`
}

// View snapshots the composed homepage.
func (c *Composer) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Banners: BannerView{
			Items:        c.bannerItems,
			CurrentIndex: c.bannerStrip.Index(),
			State:        c.bannerStrip.State().String(),
		},
		Collections: CollectionsView{
			Items: c.collectionItems,
			Strip: stripView(c.categoryStrip),
		},
		FlashDeals: FlashDealsView{
			Strip: stripView(c.dealStrip),
		},
	}
	if v.Banners.Items == nil {
		v.Banners.Items = []banner.BannerItem{}
	}
	if v.Collections.Items == nil {
		v.Collections.Items = []collection.Collection{}
	}

	if sec := c.dealSection; sec != nil {
		v.FlashDeals.Available = true
		v.FlashDeals.Title = sec.Title
		v.FlashDeals.Subtitle = sec.Subtitle
		v.FlashDeals.Deals = sec.Deals
		if !sec.EndTime.IsZero() {
			end := sec.EndTime
			v.FlashDeals.EndTime = &end
			v.FlashDeals.TimeLeft = c.countdown.Text()
		}
	}
	return v
}

func stripView(s *carousel.OffsetStrip) StripView {
	return StripView{
		Offset:    s.Offset(),
		MaxScroll: s.MaxScroll(),
		Direction: s.Direction(),
		State:     s.State().String(),
	}
}
