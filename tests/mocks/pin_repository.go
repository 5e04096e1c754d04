package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
)

type PinRepository struct {
	mock.Mock
}

func (m *PinRepository) Create(ctx context.Context, pin *domain.Pin) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

func (m *PinRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pin), args.Error(1)
}

func (m *PinRepository) List(ctx context.Context) ([]domain.Pin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pin), args.Error(1)
}
