package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
	"github.com/leo-lightfoot/travel-photo-album/internal/middleware"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

type MapHandler struct {
	mapService service.MapService
}

func NewMapHandler(mapService service.MapService) *MapHandler {
	return &MapHandler{mapService: mapService}
}

// Markers computes the clustered marker set for the requested viewport.
// Missing bounds default to the whole world so a fresh client can render
// before its first viewport settles.
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	bounds := domain.Bounds{
		West:  queryFloat(c, "west", -180),
		South: queryFloat(c, "south", -85),
		East:  queryFloat(c, "east", 180),
		North: queryFloat(c, "north", 85),
	}

	zoom, err := strconv.Atoi(c.Query("zoom", "2"))
	if err != nil || zoom < 0 || zoom > 22 {
		return middleware.BadRequest("Invalid zoom level")
	}

	markers, err := h.mapService.Markers(c.Context(), bounds, zoom, c.Query("q"))
	if err != nil {
		return middleware.BadGateway("Failed to load photos")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"markers": markers,
		"count":   len(markers),
	})
}

// Bounds returns the view framing all located pins, used by clients to
// animate after the pin list changes.
func (h *MapHandler) Bounds(c *fiber.Ctx) error {
	fit, err := h.mapService.FitAll(c.Context(), c.Query("q"))
	if err != nil {
		return middleware.BadGateway("Failed to load photos")
	}

	return c.Status(fiber.StatusOK).JSON(fit)
}

func queryFloat(c *fiber.Ctx, key string, defaultValue float64) float64 {
	if value := c.Query(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
