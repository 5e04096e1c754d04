package unit_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
	"github.com/leo-lightfoot/travel-photo-album/tests/mocks"
)

func validInput() domain.CreatePinInput {
	return domain.CreatePinInput{
		Title:     "Sunset",
		PhotoDate: "2024-03-01",
		Latitude:  floatPtr(48.8566),
		Longitude: floatPtr(2.3522),
	}
}

func TestUploadService_Start(t *testing.T) {
	svc := service.NewUploadService(new(mocks.PinService), new(mocks.MediaService))

	t.Run("Opens on first file", func(t *testing.T) {
		snap, err := svc.Start(domain.StartUploadInput{FileNames: []string{"a.jpg", "b.jpg"}})

		require.NoError(t, err)
		assert.Equal(t, domain.UploadEditing, snap.State)
		assert.Equal(t, 0, snap.Index)
		assert.Equal(t, "a.jpg", snap.CurrentFile)
	})

	t.Run("No files", func(t *testing.T) {
		_, err := svc.Start(domain.StartUploadInput{})
		assert.ErrorIs(t, err, domain.ErrNoFilesSelected)
	})

	t.Run("Unknown session", func(t *testing.T) {
		_, err := svc.Get(uuid.New())
		assert.ErrorIs(t, err, domain.ErrUploadSessionNotFound)
	})
}

func TestUploadService_SequentialFlow(t *testing.T) {
	ctx := context.Background()
	mockPins := new(mocks.PinService)
	mockMedia := new(mocks.MediaService)
	svc := service.NewUploadService(mockPins, mockMedia)

	snap, err := svc.Start(domain.StartUploadInput{FileNames: []string{"a.jpg", "b.jpg"}})
	require.NoError(t, err)

	stored := &service.StoredMedia{MediaURL: "https://cdn.example/a.jpg"}

	t.Run("First file submits and advances", func(t *testing.T) {
		mockMedia.On("Store", ctx, "a.jpg", "image/jpeg", int64(3), mock.Anything).Return(stored, nil).Once()
		mockPins.On("Create", ctx, mock.Anything, "https://cdn.example/a.jpg", (*string)(nil)).
			Return(&domain.Pin{ID: uuid.New()}, nil).Once()

		next, err := svc.Submit(ctx, snap.ID, validInput(), "a.jpg", "image/jpeg", 3, strings.NewReader("jpg"))

		require.NoError(t, err)
		assert.Equal(t, domain.UploadEditing, next.State)
		assert.Equal(t, 1, next.Index)
		assert.Equal(t, "b.jpg", next.CurrentFile)
		assert.Equal(t, 1, next.Submitted)
		mockMedia.AssertExpectations(t)
		mockPins.AssertExpectations(t)
	})

	t.Run("Second file without location is rejected before any side effect", func(t *testing.T) {
		input := validInput()
		input.Latitude = nil
		input.Longitude = nil

		_, err := svc.Submit(ctx, snap.ID, input, "b.jpg", "image/jpeg", 3, strings.NewReader("jpg"))

		assert.ErrorIs(t, err, domain.ErrLocationRequired)

		current, getErr := svc.Get(snap.ID)
		require.NoError(t, getErr)
		assert.Equal(t, domain.UploadEditing, current.State)
		assert.Equal(t, 1, current.Index)
		mockMedia.AssertNumberOfCalls(t, "Store", 1)
	})

	t.Run("Last file completes the session", func(t *testing.T) {
		mockMedia.On("Store", ctx, "b.jpg", "image/jpeg", int64(3), mock.Anything).Return(stored, nil).Once()
		mockPins.On("Create", ctx, mock.Anything, "https://cdn.example/a.jpg", (*string)(nil)).
			Return(&domain.Pin{ID: uuid.New()}, nil).Once()

		done, err := svc.Submit(ctx, snap.ID, validInput(), "b.jpg", "image/jpeg", 3, strings.NewReader("jpg"))

		require.NoError(t, err)
		assert.Equal(t, domain.UploadDone, done.State)
		assert.Equal(t, 2, done.Submitted)
		assert.Empty(t, done.CurrentFile)
	})

	t.Run("Submit after done", func(t *testing.T) {
		_, err := svc.Submit(ctx, snap.ID, validInput(), "c.jpg", "image/jpeg", 3, strings.NewReader("jpg"))
		assert.ErrorIs(t, err, domain.ErrUploadFinished)
	})
}

func TestUploadService_FailedInsertStaysOnFile(t *testing.T) {
	ctx := context.Background()
	mockPins := new(mocks.PinService)
	mockMedia := new(mocks.MediaService)
	svc := service.NewUploadService(mockPins, mockMedia)

	snap, err := svc.Start(domain.StartUploadInput{FileNames: []string{"a.jpg"}})
	require.NoError(t, err)

	stored := &service.StoredMedia{MediaURL: "https://cdn.example/a.jpg", MediaPath: "photos/a.jpg"}
	mockMedia.On("Store", ctx, "a.jpg", "image/jpeg", int64(3), mock.Anything).Return(stored, nil).Once()
	mockPins.On("Create", ctx, mock.Anything, "https://cdn.example/a.jpg", (*string)(nil)).
		Return(nil, errors.New("insert failed")).Once()
	mockMedia.On("Remove", ctx, stored).Once()

	_, err = svc.Submit(ctx, snap.ID, validInput(), "a.jpg", "image/jpeg", 3, strings.NewReader("jpg"))
	assert.Error(t, err)

	// The user stays on the current file with the session still editable.
	current, getErr := svc.Get(snap.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.UploadEditing, current.State)
	assert.Equal(t, 0, current.Index)
	assert.Equal(t, 0, current.Submitted)
	mockMedia.AssertExpectations(t)
}

func TestUploadService_Skip(t *testing.T) {
	svc := service.NewUploadService(new(mocks.PinService), new(mocks.MediaService))

	snap, err := svc.Start(domain.StartUploadInput{FileNames: []string{"a.jpg", "b.jpg"}})
	require.NoError(t, err)

	next, err := svc.Skip(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UploadEditing, next.State)
	assert.Equal(t, "b.jpg", next.CurrentFile)
	assert.Equal(t, 1, next.Skipped)

	done, err := svc.Skip(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UploadDone, done.State)

	_, err = svc.Skip(snap.ID)
	assert.ErrorIs(t, err, domain.ErrUploadFinished)
}
