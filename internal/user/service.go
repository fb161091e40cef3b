package user

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/smarket/storefront-bff/internal/gateway"
)

// Service proxies admin user management to the remote API.
type Service struct {
	api gateway.Client
}

func NewService(api gateway.Client) *Service {
	return &Service{api: api}
}

// List returns one page of users matching the filters.
func (s *Service) List(ctx context.Context, f Filters) (Page, error) {
	res, err := s.api.Get(ctx, "/users"+f.query())
	if err != nil {
		return Page{}, fmt.Errorf("list users: %w", err)
	}
	var page Page
	if err := gateway.DecodeInto(res.Data, &page); err != nil {
		return Page{}, fmt.Errorf("list users: %w", err)
	}
	return page, nil
}

// UpdateStatus sets a user's status (e.g. active, inactive).
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (User, error) {
	res, err := s.api.Put(ctx, "/users/"+id, map[string]string{"status": status})
	if err != nil {
		return User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	var u User
	if err := gateway.DecodeInto(res.Data, &u); err != nil {
		return User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	return u, nil
}

// Delete removes a user account. The confirmation gate is enforced at the
// handler.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.api.Delete(ctx, "/users/"+id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func (f Filters) query() string {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}
