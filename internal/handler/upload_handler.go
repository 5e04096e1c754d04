package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
	"github.com/leo-lightfoot/travel-photo-album/internal/middleware"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

const maxUploadSize = 10 * 1024 * 1024

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Start(c *fiber.Ctx) error {
	var input domain.StartUploadInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	snapshot, err := h.uploadService.Start(input)
	if err != nil {
		if errors.Is(err, domain.ErrNoFilesSelected) {
			return middleware.BadRequest("At least one file must be selected")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(snapshot)
}

func (h *UploadHandler) Get(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("uploadId"))
	if err != nil {
		return middleware.BadRequest("Invalid upload session ID")
	}

	snapshot, err := h.uploadService.Get(sessionID)
	if err != nil {
		return middleware.NotFound("Upload session not found")
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}

// Submit uploads the current file with its metadata. A validation problem
// or insert failure leaves the session on the same file with nothing
// stored, so the user can correct and retry.
func (h *UploadHandler) Submit(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("uploadId"))
	if err != nil {
		return middleware.BadRequest("Invalid upload session ID")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}
	if file.Size > maxUploadSize {
		return middleware.BadRequest("File size must be less than 10MB")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	input := domain.CreatePinInput{
		Title:     c.FormValue("title"),
		PhotoDate: c.FormValue("photo_date"),
	}
	if desc := c.FormValue("description"); desc != "" {
		input.Description = &desc
	}
	if tags := c.FormValue("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			input.Tags = append(input.Tags, strings.TrimSpace(tag))
		}
	}
	if lat, err := strconv.ParseFloat(c.FormValue("latitude"), 64); err == nil {
		input.Latitude = &lat
	}
	if lon, err := strconv.ParseFloat(c.FormValue("longitude"), 64); err == nil {
		input.Longitude = &lon
	}
	if city := c.FormValue("city"); city != "" {
		input.City = &city
	}
	if country := c.FormValue("country"); country != "" {
		input.Country = &country
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	snapshot, err := h.uploadService.Submit(c.Context(), sessionID, input, file.Filename, mimeType, file.Size, fileReader)
	if err != nil {
		return uploadError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(snapshot)
}

func (h *UploadHandler) Skip(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("uploadId"))
	if err != nil {
		return middleware.BadRequest("Invalid upload session ID")
	}

	snapshot, err := h.uploadService.Skip(sessionID)
	if err != nil {
		return uploadError(err)
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUploadSessionNotFound):
		return middleware.NotFound("Upload session not found")
	case errors.Is(err, domain.ErrUploadFinished):
		return middleware.Conflict("Upload session already finished")
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return middleware.Conflict("A submission is already in progress")
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrPhotoDateRequired),
		errors.Is(err, domain.ErrLocationRequired),
		errors.Is(err, domain.ErrInvalidCoordinates):
		return middleware.Unprocessable(err.Error())
	default:
		return middleware.BadGateway("Failed to upload photo")
	}
}
