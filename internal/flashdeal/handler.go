package flashdeal

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterAdminRoutes mounts the campaign management endpoints on the given
// (JWT-protected) router.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/flash-deals", h.get)
	r.Put("/flash-deals/enabled", h.setEnabled)
	r.Put("/flash-deals/end-time", h.setEndTime)
	r.Put("/flash-deals/deals", h.upsertDeal)
	r.Delete("/flash-deals/deals/:index", h.removeDeal)
}

func (h *Handler) get(c *fiber.Ctx) error {
	sec, err := h.service.Load(c.Context())
	if err != nil {
		return writeLoadError(c, err)
	}
	return c.JSON(sec)
}

func (h *Handler) setEnabled(c *fiber.Ctx) error {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	sec, err := h.service.SetEnabled(c.Context(), body.Enabled)
	if err != nil {
		return writeLoadError(c, err)
	}
	return c.JSON(sec)
}

func (h *Handler) setEndTime(c *fiber.Ctx) error {
	var body struct {
		EndTime time.Time `json:"endTime"`
	}
	if err := c.BodyParser(&body); err != nil || body.EndTime.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "endTime is required"})
	}
	sec, err := h.service.SetEndTime(c.Context(), body.EndTime)
	if err != nil {
		return writeLoadError(c, err)
	}
	return c.JSON(sec)
}

func (h *Handler) upsertDeal(c *fiber.Ctx) error {
	var body struct {
		Deal  DealItem `json:"deal"`
		Index *int     `json:"index"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if body.Deal.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "deal title is required"})
	}
	sec, err := h.service.UpsertDeal(c.Context(), body.Deal, body.Index)
	if err != nil {
		return writeLoadError(c, err)
	}
	return c.JSON(sec)
}

// removeDeal requires confirm=true, same gate as collection deletion.
func (h *Handler) removeDeal(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation required"})
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	sec, err := h.service.RemoveDeal(c.Context(), index)
	if err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrIndexOutOfRange.Error()})
		}
		return writeLoadError(c, err)
	}
	return c.JSON(sec)
}

func writeLoadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNoCampaign) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no flash deals section found"})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to load flash deals"})
}
