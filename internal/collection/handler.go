package collection

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterAdminRoutes mounts the collection management endpoints on the
// given (JWT-protected) router.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/collections", h.list)
	r.Post("/collections", h.create)
	r.Get("/collections/:id", h.get)
	r.Put("/collections/:id", h.update)
	r.Delete("/collections/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.service.ListAdmin(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to load collections"})
	}
	return c.JSON(items)
}

func (h *Handler) get(c *fiber.Ctx) error {
	item, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to load collection"})
	}
	return c.JSON(item)
}

func (h *Handler) create(c *fiber.Ctx) error {
	var draft Collection
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	saved, err := h.service.Create(c.Context(), draft)
	if err != nil {
		return writeSaveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *Handler) update(c *fiber.Ctx) error {
	var draft Collection
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	saved, err := h.service.Update(c.Context(), c.Params("id"), draft)
	if err != nil {
		return writeSaveError(c, err)
	}
	return c.JSON(saved)
}

// delete requires an explicit confirm=true; without it the request is
// rejected before any upstream call, which is the cancelable step.
func (h *Handler) delete(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation required"})
	}
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to delete collection"})
	}
	return c.JSON(fiber.Map{"message": "collection deleted"})
}

func writeSaveError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNameRequired) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrNameRequired.Error()})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to save collection"})
}
