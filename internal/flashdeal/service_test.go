package flashdeal

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/smarket/storefront-bff/internal/gateway"
	"github.com/smarket/storefront-bff/internal/gateway/gatewaytest"
)

// stubBackend wires a stateful fake of the two home-section endpoints: the
// public listing and the whole-aggregate replace.
func stubBackend(sections ...Section) (*gatewaytest.Stub, *[]Section) {
	state := make([]Section, len(sections))
	copy(state, sections)

	stub := gatewaytest.NewStub()
	stub.On(http.MethodGet, "/home-sections/public", func(any) (gateway.Response, error) {
		return gatewaytest.JSON(state), nil
	})
	for i := range state {
		id := state[i].ID
		idx := i
		stub.On(http.MethodPut, "/home-sections/"+id, func(body any) (gateway.Response, error) {
			sec, ok := body.(Section)
			if !ok {
				return gateway.Response{Status: http.StatusBadRequest},
					&gateway.StatusError{Status: http.StatusBadRequest}
			}
			state[idx] = sec
			return gatewaytest.JSON(sec), nil
		})
	}
	return stub, &state
}

func campaign() Section {
	return Section{
		ID:      "fd1",
		Type:    TypeFlashDeals,
		Title:   "Flash Deals",
		Enabled: true,
		Deals: []DealItem{
			{Title: "first", SalePrice: 5, OriginalPrice: 10},
			{Title: "second", SalePrice: 8, OriginalPrice: 12},
			{Title: "third", SalePrice: 1, OriginalPrice: 2},
		},
		EndTime: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoadSelectsFirstFlashDealsSection(t *testing.T) {
	other := Section{ID: "hero", Type: "hero_banner"}
	first := campaign()
	second := campaign()
	second.ID = "fd2"

	stub, _ := stubBackend(other, first, second)
	s := NewService(stub)

	sec, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sec.ID != "fd1" {
		t.Fatalf("expected first flash_deals section, got %s", sec.ID)
	}
}

func TestLoadAbsentIsTerminalNotError(t *testing.T) {
	stub, _ := stubBackend(Section{ID: "hero", Type: "hero_banner"})
	s := NewService(stub)

	if _, err := s.Load(context.Background()); !errors.Is(err, ErrNoCampaign) {
		t.Fatalf("expected ErrNoCampaign, got %v", err)
	}
}

func TestLoadEnabledHidesDisabledOrEmptyCampaigns(t *testing.T) {
	disabled := campaign()
	disabled.Enabled = false
	stub, _ := stubBackend(disabled)
	if _, err := NewService(stub).LoadEnabled(context.Background()); !errors.Is(err, ErrNoCampaign) {
		t.Fatalf("disabled campaign must not render, got %v", err)
	}

	empty := campaign()
	empty.Deals = nil
	stub, _ = stubBackend(empty)
	if _, err := NewService(stub).LoadEnabled(context.Background()); !errors.Is(err, ErrNoCampaign) {
		t.Fatalf("empty campaign must not render, got %v", err)
	}
}

func TestSetEnabledRoundTrips(t *testing.T) {
	stub, state := stubBackend(campaign())
	s := NewService(stub)

	sec, err := s.SetEnabled(context.Background(), false)
	if err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if sec.Enabled {
		t.Fatalf("expected disabled campaign after mutation")
	}
	if sec.Title != "Flash Deals" || len(sec.Deals) != 3 {
		t.Fatalf("other fields must be untouched: %+v", sec)
	}

	sec, err = s.SetEnabled(context.Background(), true)
	if err != nil {
		t.Fatalf("re-enable failed: %v", err)
	}
	if !sec.Enabled {
		t.Fatalf("toggling twice must restore the original value")
	}
	if !(*state)[0].Enabled {
		t.Fatalf("backend state must reflect the last write")
	}
}

func TestMutationIsReadModifyWriteReload(t *testing.T) {
	stub, _ := stubBackend(campaign())
	s := NewService(stub)

	if _, err := s.SetEnabled(context.Background(), false); err != nil {
		t.Fatalf("mutation failed: %v", err)
	}

	gets := stub.CallsTo(http.MethodGet, "/home-sections/public")
	puts := stub.CallsTo(http.MethodPut, "/home-sections/fd1")
	if len(gets) != 2 || len(puts) != 1 {
		t.Fatalf("expected load, replace, reload; saw %d gets and %d puts", len(gets), len(puts))
	}
	// the replace carries the whole aggregate, not a patch
	sent, ok := puts[0].Body.(Section)
	if !ok || sent.ID != "fd1" || len(sent.Deals) != 3 || sent.Title == "" {
		t.Fatalf("replace must resubmit the whole aggregate, sent %+v", puts[0].Body)
	}
}

func TestSetEndTimeReplacesOnlyEndTime(t *testing.T) {
	stub, _ := stubBackend(campaign())
	s := NewService(stub)

	next := time.Date(2025, 8, 1, 18, 30, 0, 0, time.UTC)
	sec, err := s.SetEndTime(context.Background(), next)
	if err != nil {
		t.Fatalf("set end time failed: %v", err)
	}
	if !sec.EndTime.Equal(next) {
		t.Fatalf("end time not applied: %v", sec.EndTime)
	}
	if !sec.Enabled || len(sec.Deals) != 3 {
		t.Fatalf("other fields must be untouched: %+v", sec)
	}
}

func TestUpsertDealAppendsAndReplaces(t *testing.T) {
	stub, _ := stubBackend(campaign())
	s := NewService(stub)

	// no index appends
	sec, err := s.UpsertDeal(context.Background(), DealItem{Title: "fourth"}, nil)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if len(sec.Deals) != 4 || sec.Deals[3].Title != "fourth" {
		t.Fatalf("expected appended deal, got %+v", sec.Deals)
	}

	// in-range index replaces
	idx := 1
	sec, err = s.UpsertDeal(context.Background(), DealItem{Title: "replaced"}, &idx)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if len(sec.Deals) != 4 || sec.Deals[1].Title != "replaced" {
		t.Fatalf("expected replaced deal at 1, got %+v", sec.Deals)
	}

	// out-of-range index falls back to append
	idx = 99
	sec, err = s.UpsertDeal(context.Background(), DealItem{Title: "tail"}, &idx)
	if err != nil {
		t.Fatalf("out-of-range upsert failed: %v", err)
	}
	if len(sec.Deals) != 5 || sec.Deals[4].Title != "tail" {
		t.Fatalf("expected appended deal for out-of-range index, got %+v", sec.Deals)
	}
}

func TestRemoveDealPreservesOrder(t *testing.T) {
	stub, _ := stubBackend(campaign())
	s := NewService(stub)

	sec, err := s.RemoveDeal(context.Background(), 1)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(sec.Deals) != 2 {
		t.Fatalf("expected 2 deals after remove, got %d", len(sec.Deals))
	}
	if sec.Deals[0].Title != "first" || sec.Deals[1].Title != "third" {
		t.Fatalf("remaining deals out of order: %+v", sec.Deals)
	}
}

func TestRemoveDealOutOfRange(t *testing.T) {
	stub, _ := stubBackend(campaign())
	s := NewService(stub)

	if _, err := s.RemoveDeal(context.Background(), 7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if puts := stub.CallsTo(http.MethodPut, "/home-sections/fd1"); len(puts) != 0 {
		t.Fatalf("out-of-range remove must not write upstream")
	}
}
