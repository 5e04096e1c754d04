package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

type MediaService struct {
	mock.Mock
}

func (m *MediaService) Store(ctx context.Context, fileName, mimeType string, size int64, reader io.Reader) (*service.StoredMedia, error) {
	args := m.Called(ctx, fileName, mimeType, size, reader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredMedia), args.Error(1)
}

func (m *MediaService) Remove(ctx context.Context, media *service.StoredMedia) {
	m.Called(ctx, media)
}
