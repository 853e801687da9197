package handler

import (
	"funkopop-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FunkoPopHandler struct {
	service service.FunkoPopService
}

func NewFunkoPopHandler(s service.FunkoPopService) *FunkoPopHandler {
	return &FunkoPopHandler{service: s}
}

// parseBody reads the request body as a raw field map so absent keys can be
// told apart from present-but-empty ones. An unreadable or empty body is an
// empty payload; the validation rules report the missing fields.
func parseBody(c *fiber.Ctx) map[string]interface{} {
	payload := map[string]interface{}{}
	_ = c.BodyParser(&payload)
	return payload
}

// GetAll handles GET /api/1.0/funkopops
func (h *FunkoPopHandler) GetAll(c *fiber.Ctx) error {
	pops, err := h.service.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"funkopops": pops,
		"size":      len(pops),
	})
}

// GetByID handles GET /api/1.0/funkopops/:id
func (h *FunkoPopHandler) GetByID(c *fiber.Ctx) error {
	pop, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"funkopop": pop})
}

// Create handles POST /api/1.0/funkopops
func (h *FunkoPopHandler) Create(c *fiber.Ctx) error {
	pop, err := h.service.Create(parseBody(c))
	if err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"funkopop": pop})
}

// Edit handles PATCH /api/1.0/funkopops/:id
func (h *FunkoPopHandler) Edit(c *fiber.Ctx) error {
	pop, err := h.service.Edit(c.Params("id"), parseBody(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"funkopop": pop})
}

// Delete handles DELETE /api/1.0/funkopops/:id
func (h *FunkoPopHandler) Delete(c *fiber.Ctx) error {
	pop, err := h.service.Delete(c.Params("id"))
	if err != nil {
		return err
	}
	if pop == nil {
		return c.SendStatus(204)
	}
	return c.JSON(fiber.Map{"deletedFunkoPop": pop})
}
