package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smarket/storefront-bff/internal/carousel"
)

type Handler struct {
	composer *Composer
}

func NewHandler(c *Composer) *Handler {
	return &Handler{composer: c}
}

// RegisterPublicRoutes mounts the storefront homepage endpoints.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/home", h.getHome)
	app.Post("/api/v1/home/refresh", h.refresh)
	app.Get("/api/v1/home/banners", h.getBanners)
	app.Get("/api/v1/home/collections", h.getCollections)
	app.Get("/api/v1/home/flash-deals", h.getFlashDeals)
	app.Post("/api/v1/home/banners/navigate", h.navigateBanner)
	app.Post("/api/v1/home/strips/:name/pause", h.pauseStrip)
	app.Post("/api/v1/home/strips/:name/resume", h.resumeStrip)
	app.Post("/api/v1/home/strips/deals/nudge", h.nudgeDeals)
}

func (h *Handler) getHome(c *fiber.Ctx) error {
	return c.JSON(h.composer.View())
}

func (h *Handler) refresh(c *fiber.Ctx) error {
	h.composer.Refresh(c.Context())
	return c.JSON(h.composer.View())
}

func (h *Handler) getBanners(c *fiber.Ctx) error {
	return c.JSON(h.composer.View().Banners)
}

func (h *Handler) getCollections(c *fiber.Ctx) error {
	return c.JSON(h.composer.View().Collections)
}

func (h *Handler) getFlashDeals(c *fiber.Ctx) error {
	return c.JSON(h.composer.View().FlashDeals)
}

// navigateBanner jumps the top carousel to the requested slide; the
// autonomous timer keeps its own schedule.
func (h *Handler) navigateBanner(c *fiber.Ctx) error {
	var body struct {
		Index int `json:"index"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	strip := h.composer.Banners()
	strip.Navigate(body.Index)
	return c.JSON(fiber.Map{"currentIndex": strip.Index()})
}

func (h *Handler) pauseStrip(c *fiber.Ctx) error {
	strip, err := h.offsetStrip(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown strip"})
	}
	strip.Pause()
	return c.JSON(fiber.Map{"state": strip.State().String()})
}

func (h *Handler) resumeStrip(c *fiber.Ctx) error {
	strip, err := h.offsetStrip(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown strip"})
	}
	strip.Resume()
	return c.JSON(fiber.Map{"state": strip.State().String()})
}

// nudgeDeals scrolls the deal strip by half a viewport, like the manual
// arrow buttons.
func (h *Handler) nudgeDeals(c *fiber.Ctx) error {
	var body struct {
		Direction int `json:"direction"`
	}
	if err := c.BodyParser(&body); err != nil || (body.Direction != 1 && body.Direction != -1) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "direction must be 1 or -1"})
	}
	strip := h.composer.DealStrip()
	strip.Nudge(body.Direction)
	return c.JSON(fiber.Map{"offset": strip.Offset()})
}

func (h *Handler) offsetStrip(name string) (*carousel.OffsetStrip, error) {
	switch name {
	case "deals":
		return h.composer.DealStrip(), nil
	case "collections", "categories":
		return h.composer.CategoryStrip(), nil
	default:
		return nil, fiber.ErrNotFound
	}
}
