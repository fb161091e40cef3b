package flashdeal

import (
	"errors"
	"time"
)

// TypeFlashDeals marks the home section this engine owns.
const TypeFlashDeals = "flash_deals"

// DealItem is a single promoted product inside the campaign. Deals carry no
// server-side identity; a deal is identified by its position in the list.
type DealItem struct {
	Title         string  `json:"title"`
	Discount      string  `json:"discount"`
	Image         string  `json:"image"`
	OriginalPrice float64 `json:"originalPrice"`
	SalePrice     float64 `json:"salePrice"`
	Category      string  `json:"category"`
}

// Section is the flash-deal campaign aggregate. It is provisioned out of
// band; this service only reads it and replaces it wholesale on mutation.
type Section struct {
	ID       string     `json:"_id"`
	Type     string     `json:"type"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Enabled  bool       `json:"enabled"`
	Deals    []DealItem `json:"deals"`
	EndTime  time.Time  `json:"endTime"`
}

// ErrNoCampaign is returned when no flash-deal section exists upstream.
// "No campaign configured" is a valid terminal state, not a failure.
var ErrNoCampaign = errors.New("no flash deal campaign configured")

// ErrIndexOutOfRange is returned for a deal index outside the current list.
var ErrIndexOutOfRange = errors.New("deal index out of range")
