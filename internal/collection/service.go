package collection

import (
	"context"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/smarket/storefront-bff/internal/gateway"
)

// Service fetches, orders and mutates merchandising collections through the
// remote content API.
type Service struct {
	api       gateway.Client
	onDeleted func(id string)
}

func NewService(api gateway.Client) *Service {
	return &Service{api: api}
}

// NotifyDeleted registers a hook invoked after a successful delete so held
// listings can drop the item without a refetch.
func (s *Service) NotifyDeleted(fn func(id string)) {
	s.onDeleted = fn
}

// ListPublic returns the collections eligible for the storefront: active
// only, ordered ascending by position with ties kept in fetch order. A failed
// fetch is logged and yields an empty list, never an error.
func (s *Service) ListPublic(ctx context.Context) []Collection {
	all, err := s.fetchAll(ctx)
	if err != nil {
		log.Warnf("failed to load collections: %v", err)
		return []Collection{}
	}

	out := make([]Collection, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// ListAdmin returns every collection, including inactive ones, in the order
// the backend returned them.
func (s *Service) ListAdmin(ctx context.Context) ([]Collection, error) {
	return s.fetchAll(ctx)
}

// Get fetches a single collection for the admin edit form.
func (s *Service) Get(ctx context.Context, id string) (Collection, error) {
	res, err := s.api.Get(ctx, "/collections/admin/"+id)
	if err != nil {
		return Collection{}, fmt.Errorf("load collection %s: %w", id, err)
	}
	var c Collection
	if err := gateway.DecodeInto(res.Data, &c); err != nil {
		return Collection{}, fmt.Errorf("load collection %s: %w", id, err)
	}
	return c, nil
}

// Create validates the draft locally, fills a missing slug from the name and
// submits it. Validation failures never reach the network.
func (s *Service) Create(ctx context.Context, draft Collection) (Collection, error) {
	prepared, err := prepare(draft)
	if err != nil {
		return Collection{}, err
	}
	res, err := s.api.Post(ctx, "/collections", prepared)
	if err != nil {
		return Collection{}, fmt.Errorf("create collection: %w", err)
	}
	var saved Collection
	if err := gateway.DecodeInto(res.Data, &saved); err != nil {
		return Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return saved, nil
}

// Update behaves like Create against an existing collection.
func (s *Service) Update(ctx context.Context, id string, draft Collection) (Collection, error) {
	prepared, err := prepare(draft)
	if err != nil {
		return Collection{}, err
	}
	res, err := s.api.Put(ctx, "/collections/"+id, prepared)
	if err != nil {
		return Collection{}, fmt.Errorf("update collection %s: %w", id, err)
	}
	var saved Collection
	if err := gateway.DecodeInto(res.Data, &saved); err != nil {
		return Collection{}, fmt.Errorf("update collection %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes a collection. The confirmation gate is enforced at the
// handler; on success any registered listing hook drops the item so held
// views stay consistent without a refetch.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.api.Delete(ctx, "/collections/"+id); err != nil {
		return fmt.Errorf("delete collection %s: %w", id, err)
	}
	if s.onDeleted != nil {
		s.onDeleted(id)
	}
	return nil
}

func (s *Service) fetchAll(ctx context.Context) ([]Collection, error) {
	res, err := s.api.Get(ctx, "/collections")
	if err != nil {
		return nil, err
	}
	var all []Collection
	if err := gateway.DecodeInto(res.Data, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func prepare(draft Collection) (Collection, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return Collection{}, ErrNameRequired
	}
	if draft.Slug == "" {
		draft.Slug = Slugify(draft.Name)
	}
	return draft, nil
}
