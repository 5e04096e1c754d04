package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
)

type PinService struct {
	mock.Mock
}

func (m *PinService) List(ctx context.Context, query string) ([]domain.Pin, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pin), args.Error(1)
}

func (m *PinService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pin), args.Error(1)
}

func (m *PinService) Create(ctx context.Context, input domain.CreatePinInput, mediaURL string, thumbURL *string) (*domain.Pin, error) {
	args := m.Called(ctx, input, mediaURL, thumbURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pin), args.Error(1)
}

func (m *PinService) Timeline(ctx context.Context, query string) ([]domain.TimelineBucket, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimelineBucket), args.Error(1)
}
