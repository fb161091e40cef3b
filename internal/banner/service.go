package banner

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/smarket/storefront-bff/internal/gateway"
)

// Service provides the public banner listing.
type Service struct {
	api gateway.Client
}

func NewService(api gateway.Client) *Service {
	return &Service{api: api}
}

// List returns the published banners. A failed fetch is logged and yields an
// empty list so the storefront can render a fallback.
func (s *Service) List(ctx context.Context) []BannerItem {
	res, err := s.api.Get(ctx, "/banners/public")
	if err != nil {
		log.Warnf("failed to load banners: %v", err)
		return []BannerItem{}
	}
	var items []BannerItem
	if err := gateway.DecodeInto(res.Data, &items); err != nil {
		log.Warnf("failed to decode banners: %v", err)
		return []BannerItem{}
	}
	return items
}
