package handler

import (
	"funkopop-api/internal/apperror"
	"funkopop-api/internal/model"
	"funkopop-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// caller returns the identity RequireAuth resolved for this request
func caller(c *fiber.Ctx) (*model.User, error) {
	user, ok := c.Locals("user").(*model.User)
	if !ok {
		return nil, apperror.Unauthorized()
	}
	return user, nil
}

// Create handles POST /api/1.0/funkopops/:id/reviews
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}

	review, err := h.service.Create(c.Params("id"), user.ID, parseBody(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"review": review})
}

// List handles GET /api/1.0/funkopops/:id/reviews
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.service.ListForProduct(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

// Edit handles PATCH /api/1.0/funkopops/:id/reviews/:reviewId
func (h *ReviewHandler) Edit(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}

	review, err := h.service.Edit(c.Params("id"), c.Params("reviewId"), user, parseBody(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"review": review})
}

// Delete handles DELETE /api/1.0/funkopops/:id/reviews/:reviewId
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}

	review, err := h.service.Delete(c.Params("id"), c.Params("reviewId"), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedReview": review})
}
