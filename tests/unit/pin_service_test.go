package unit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
	"github.com/leo-lightfoot/travel-photo-album/tests/mocks"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func datedPin(title, date string, city string) domain.Pin {
	d, _ := time.Parse("2006-01-02", date)
	pin := domain.Pin{Title: title, PhotoDate: d}
	if city != "" {
		pin.City = &city
	}
	return pin
}

func TestPinService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes through repository order", func(t *testing.T) {
		mockRepo := new(mocks.PinRepository)
		svc := service.NewPinService(mockRepo, nil)

		pins := []domain.Pin{
			datedPin("C", "2024-04-01", ""),
			datedPin("B", "2024-03-15", ""),
			datedPin("A", "2024-03-01", ""),
		}
		mockRepo.On("List", ctx).Return(pins, nil).Once()

		result, err := svc.List(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, pins, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Applies free-text filter", func(t *testing.T) {
		mockRepo := new(mocks.PinRepository)
		svc := service.NewPinService(mockRepo, nil)

		pins := []domain.Pin{
			datedPin("Louvre", "2024-04-01", "Paris"),
			datedPin("Old town", "2024-03-15", "Lyon"),
		}
		mockRepo.On("List", ctx).Return(pins, nil).Once()

		result, err := svc.List(ctx, "paris")

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Louvre", result[0].Title)
	})

	t.Run("Repo error", func(t *testing.T) {
		mockRepo := new(mocks.PinRepository)
		svc := service.NewPinService(mockRepo, nil)

		mockRepo.On("List", ctx).Return(nil, errors.New("db error")).Once()

		result, err := svc.List(ctx, "")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestPinService_Create(t *testing.T) {
	ctx := context.Background()

	input := domain.CreatePinInput{
		Title:     "Sunset at Eiffel Tower",
		Tags:      []string{"sunset", " paris ", ""},
		PhotoDate: "2024-03-01",
		Latitude:  floatPtr(48.8566),
		Longitude: floatPtr(2.3522),
		City:      strPtr("Paris"),
		Country:   strPtr("France"),
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.PinRepository)
		svc := service.NewPinService(mockRepo, nil)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Pin) bool {
			return p.Title == "Sunset at Eiffel Tower" &&
				p.MediaURL == "https://cdn.example/photo.jpg" &&
				len(p.Tags) == 2 && p.Tags[1] == "paris" &&
				p.PhotoDate.Format("2006-01-02") == "2024-03-01"
		})).Return(nil).Once()

		pin, err := svc.Create(ctx, input, "https://cdn.example/photo.jpg", nil)

		require.NoError(t, err)
		require.NotNil(t, pin)
		assert.Equal(t, "Paris", *pin.City)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid input never reaches repository", func(t *testing.T) {
		mockRepo := new(mocks.PinRepository)
		svc := service.NewPinService(mockRepo, nil)

		bad := input
		bad.Latitude = nil

		pin, err := svc.Create(ctx, bad, "https://cdn.example/photo.jpg", nil)

		assert.ErrorIs(t, err, domain.ErrLocationRequired)
		assert.Nil(t, pin)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Repo error", func(t *testing.T) {
		mockRepo := new(mocks.PinRepository)
		svc := service.NewPinService(mockRepo, nil)

		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("db error")).Once()

		pin, err := svc.Create(ctx, input, "https://cdn.example/photo.jpg", nil)

		assert.Error(t, err)
		assert.Nil(t, pin)
	})
}

func TestPinService_Timeline(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.PinRepository)
	svc := service.NewPinService(mockRepo, nil)

	pins := []domain.Pin{
		datedPin("C", "2024-04-01", ""),
		datedPin("B", "2024-03-15", ""),
		datedPin("A", "2024-03-01", ""),
	}
	mockRepo.On("List", ctx).Return(pins, nil).Once()

	buckets, err := svc.Timeline(ctx, "")

	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "April 2024", buckets[0].Period)
	assert.Equal(t, "March 2024", buckets[1].Period)
	assert.Len(t, buckets[1].Pins, 2)
}
