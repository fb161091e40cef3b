package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterAdminRoutes mounts the user management endpoints on the given
// (JWT-protected) router.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/users", h.list)
	r.Put("/users/:id", h.updateStatus)
	r.Delete("/users/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	f := Filters{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		f.Limit = v
	}

	page, err := h.service.List(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to load users"})
	}
	return c.JSON(page)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status is required"})
	}
	u, err := h.service.UpdateStatus(c.Context(), c.Params("id"), body.Status)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to update user"})
	}
	return c.JSON(u)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation required"})
	}
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to delete user"})
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}
