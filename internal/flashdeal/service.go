package flashdeal

import (
	"context"
	"fmt"
	"time"

	"github.com/smarket/storefront-bff/internal/gateway"
)

// Service owns the flash-deal campaign aggregate. Every mutation is a full
// read-modify-write: load the section, change one field, replace the whole
// document, then reload before anything is shown. Concurrent admin sessions
// race and the last write wins; the client makes no attempt at conflict
// detection.
type Service struct {
	api gateway.Client
}

func NewService(api gateway.Client) *Service {
	return &Service{api: api}
}

// Load returns the authoritative campaign: the first section of type
// flash_deals from the public listing. Sections beyond the first are
// tolerated upstream but ignored here.
func (s *Service) Load(ctx context.Context) (Section, error) {
	res, err := s.api.Get(ctx, "/home-sections/public")
	if err != nil {
		return Section{}, fmt.Errorf("load home sections: %w", err)
	}
	var sections []Section
	if err := gateway.DecodeInto(res.Data, &sections); err != nil {
		return Section{}, fmt.Errorf("load home sections: %w", err)
	}
	for _, sec := range sections {
		if sec.Type == TypeFlashDeals {
			return sec, nil
		}
	}
	return Section{}, ErrNoCampaign
}

// LoadEnabled returns the campaign only when it should actually render on
// the storefront: enabled and holding at least one deal.
func (s *Service) LoadEnabled(ctx context.Context) (Section, error) {
	sec, err := s.Load(ctx)
	if err != nil {
		return Section{}, err
	}
	if !sec.Enabled || len(sec.Deals) == 0 {
		return Section{}, ErrNoCampaign
	}
	return sec, nil
}

// SetEnabled replaces the aggregate with the flag flipped to next, leaving
// every other field unchanged, then reloads.
func (s *Service) SetEnabled(ctx context.Context, next bool) (Section, error) {
	return s.mutate(ctx, func(sec *Section) error {
		sec.Enabled = next
		return nil
	})
}

// SetEndTime replaces the aggregate with the new countdown end time.
func (s *Service) SetEndTime(ctx context.Context, next time.Time) (Section, error) {
	return s.mutate(ctx, func(sec *Section) error {
		sec.EndTime = next
		return nil
	})
}

// UpsertDeal replaces deals[index] when index is given and in range,
// otherwise appends. The whole deals array is resubmitted either way.
func (s *Service) UpsertDeal(ctx context.Context, item DealItem, index *int) (Section, error) {
	return s.mutate(ctx, func(sec *Section) error {
		if index != nil && *index >= 0 && *index < len(sec.Deals) {
			deals := make([]DealItem, len(sec.Deals))
			copy(deals, sec.Deals)
			deals[*index] = item
			sec.Deals = deals
			return nil
		}
		sec.Deals = append(append([]DealItem{}, sec.Deals...), item)
		return nil
	})
}

// RemoveDeal drops the deal at index, keeping the remaining deals in their
// original relative order.
func (s *Service) RemoveDeal(ctx context.Context, index int) (Section, error) {
	return s.mutate(ctx, func(sec *Section) error {
		if index < 0 || index >= len(sec.Deals) {
			return ErrIndexOutOfRange
		}
		deals := make([]DealItem, 0, len(sec.Deals)-1)
		deals = append(deals, sec.Deals[:index]...)
		deals = append(deals, sec.Deals[index+1:]...)
		sec.Deals = deals
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, apply func(*Section) error) (Section, error) {
	sec, err := s.Load(ctx)
	if err != nil {
		return Section{}, err
	}
	if err := apply(&sec); err != nil {
		return Section{}, err
	}
	if _, err := s.api.Put(ctx, "/home-sections/"+sec.ID, sec); err != nil {
		return Section{}, fmt.Errorf("replace home section %s: %w", sec.ID, err)
	}
	// read-after-write is enforced here, not by the backend
	return s.Load(ctx)
}
