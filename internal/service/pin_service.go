package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
	"github.com/leo-lightfoot/travel-photo-album/internal/repository"
)

const (
	pinCacheKey = "album:pins"
	pinCacheTTL = 5 * time.Minute
)

type PinService interface {
	List(ctx context.Context, query string) ([]domain.Pin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
	Create(ctx context.Context, input domain.CreatePinInput, mediaURL string, thumbURL *string) (*domain.Pin, error)
	Timeline(ctx context.Context, query string) ([]domain.TimelineBucket, error)
}

type pinService struct {
	pinRepo repository.PinRepository
	redis   *redis.Client
}

func NewPinService(pinRepo repository.PinRepository, redis *redis.Client) PinService {
	return &pinService{pinRepo: pinRepo, redis: redis}
}

// List returns the full pin set ordered by photo date descending, reduced
// by the free-text query. The unfiltered set is served through a short
// lived cache; filtering is always recomputed.
func (s *pinService) List(ctx context.Context, query string) ([]domain.Pin, error) {
	pins, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterPins(pins, query), nil
}

func (s *pinService) listAll(ctx context.Context) ([]domain.Pin, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, pinCacheKey).Result(); err == nil {
			var pins []domain.Pin
			if json.Unmarshal([]byte(cached), &pins) == nil {
				return pins, nil
			}
		}
	}

	pins, err := s.pinRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(pins); err == nil {
			_ = s.redis.Set(ctx, pinCacheKey, data, pinCacheTTL).Err()
		}
	}

	return pins, nil
}

func (s *pinService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	return s.pinRepo.GetByID(ctx, id)
}

func (s *pinService) Create(ctx context.Context, input domain.CreatePinInput, mediaURL string, thumbURL *string) (*domain.Pin, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	photoDate, err := time.Parse("2006-01-02", input.PhotoDate)
	if err != nil {
		return nil, domain.ErrPhotoDateRequired
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	pin := &domain.Pin{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Tags:        tags,
		MediaURL:    mediaURL,
		ThumbURL:    thumbURL,
		PhotoDate:   photoDate,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		City:        input.City,
		Country:     input.Country,
	}

	if err := s.pinRepo.Create(ctx, pin); err != nil {
		return nil, err
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx, pinCacheKey).Err()
	}

	return pin, nil
}

func (s *pinService) Timeline(ctx context.Context, query string) ([]domain.TimelineBucket, error) {
	pins, err := s.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return domain.BuildTimeline(pins), nil
}
