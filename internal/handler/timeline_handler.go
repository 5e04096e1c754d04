package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leo-lightfoot/travel-photo-album/internal/middleware"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

type TimelineHandler struct {
	pinService service.PinService
}

func NewTimelineHandler(pinService service.PinService) *TimelineHandler {
	return &TimelineHandler{pinService: pinService}
}

// Get returns the pin set grouped into calendar-month buckets, optionally
// reduced by the free-text query in ?q.
func (h *TimelineHandler) Get(c *fiber.Ctx) error {
	buckets, err := h.pinService.Timeline(c.Context(), c.Query("q"))
	if err != nil {
		return middleware.BadGateway("Failed to load photos")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"buckets": buckets,
		"count":   len(buckets),
	})
}
