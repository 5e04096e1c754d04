package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
	"github.com/leo-lightfoot/travel-photo-album/internal/middleware"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

type PinHandler struct {
	pinService service.PinService
}

func NewPinHandler(pinService service.PinService) *PinHandler {
	return &PinHandler{pinService: pinService}
}

// List returns every pin ordered by photo date descending, optionally
// reduced by the free-text query in ?q.
func (h *PinHandler) List(c *fiber.Ctx) error {
	pins, err := h.pinService.List(c.Context(), c.Query("q"))
	if err != nil {
		return middleware.BadGateway("Failed to load photos")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"pins":  pins,
		"count": len(pins),
	})
}

func (h *PinHandler) Get(c *fiber.Ctx) error {
	pinID, err := uuid.Parse(c.Params("pinId"))
	if err != nil {
		return middleware.BadRequest("Invalid pin ID")
	}

	pin, err := h.pinService.GetByID(c.Context(), pinID)
	if err != nil {
		if errors.Is(err, domain.ErrPinNotFound) {
			return middleware.NotFound("Pin not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(pin)
}
