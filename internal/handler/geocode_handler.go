package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/leo-lightfoot/travel-photo-album/internal/middleware"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

type GeocodeHandler struct {
	geocodeService service.GeocodeService
}

func NewGeocodeHandler(geocodeService service.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocodeService: geocodeService}
}

// Reverse resolves coordinates to a best-effort city and country. The
// lookup never fails outward: an unreachable geocoder yields empty
// fields, which the upload form simply leaves blank.
func (h *GeocodeHandler) Reverse(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return middleware.BadRequest("Invalid latitude")
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return middleware.BadRequest("Invalid longitude")
	}

	place := h.geocodeService.Reverse(c.Context(), lat, lon)
	return c.Status(fiber.StatusOK).JSON(place)
}
