package service

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
)

// UploadService runs the sequential multi-file upload flow as an explicit
// state machine per session: Editing -> Submitting -> Editing(next) or
// Done, with Skip advancing without a submit. One file's submission must
// settle before the next begins; a failed insert leaves the session on
// the current file so the user can correct and retry.
type UploadService interface {
	Start(input domain.StartUploadInput) (*domain.UploadSnapshot, error)
	Get(id uuid.UUID) (*domain.UploadSnapshot, error)
	Submit(ctx context.Context, id uuid.UUID, input domain.CreatePinInput, fileName, mimeType string, size int64, reader io.Reader) (*domain.UploadSnapshot, error)
	Skip(id uuid.UUID) (*domain.UploadSnapshot, error)
}

type uploadSession struct {
	id        uuid.UUID
	fileNames []string
	index     int
	state     domain.UploadState
	submitted int
	skipped   int
}

func (s *uploadSession) snapshot() *domain.UploadSnapshot {
	snap := &domain.UploadSnapshot{
		ID:        s.id,
		State:     s.state,
		FileNames: s.fileNames,
		Index:     s.index,
		Submitted: s.submitted,
		Skipped:   s.skipped,
	}
	if s.state != domain.UploadDone {
		snap.CurrentFile = s.fileNames[s.index]
	}
	return snap
}

func (s *uploadSession) advance() {
	s.index++
	if s.index >= len(s.fileNames) {
		s.state = domain.UploadDone
		s.index = len(s.fileNames)
	} else {
		s.state = domain.UploadEditing
	}
}

type uploadService struct {
	pinService   PinService
	mediaService MediaService

	mu       sync.Mutex
	sessions map[uuid.UUID]*uploadSession
}

func NewUploadService(pinService PinService, mediaService MediaService) UploadService {
	return &uploadService{
		pinService:   pinService,
		mediaService: mediaService,
		sessions:     make(map[uuid.UUID]*uploadSession),
	}
}

func (s *uploadService) Start(input domain.StartUploadInput) (*domain.UploadSnapshot, error) {
	if len(input.FileNames) == 0 {
		return nil, domain.ErrNoFilesSelected
	}

	session := &uploadSession{
		id:        uuid.New(),
		fileNames: input.FileNames,
		state:     domain.UploadEditing,
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	return session.snapshot(), nil
}

func (s *uploadService) Get(id uuid.UUID) (*domain.UploadSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrUploadSessionNotFound
	}
	return session.snapshot(), nil
}

func (s *uploadService) Submit(ctx context.Context, id uuid.UUID, input domain.CreatePinInput, fileName, mimeType string, size int64, reader io.Reader) (*domain.UploadSnapshot, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrUploadSessionNotFound
	}
	switch session.state {
	case domain.UploadDone:
		s.mu.Unlock()
		return nil, domain.ErrUploadFinished
	case domain.UploadSubmitting:
		s.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}

	// Reject incomplete metadata before any side effect; the session
	// stays in Editing.
	if err := input.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	session.state = domain.UploadSubmitting
	s.mu.Unlock()

	stored, err := s.mediaService.Store(ctx, fileName, mimeType, size, reader)
	if err != nil {
		s.fail(session)
		return nil, err
	}

	var thumbURL *string
	if stored.ThumbURL != "" {
		thumbURL = &stored.ThumbURL
	}

	if _, err := s.pinService.Create(ctx, input, stored.MediaURL, thumbURL); err != nil {
		s.mediaService.Remove(ctx, stored)
		s.fail(session)
		return nil, err
	}

	s.mu.Lock()
	session.submitted++
	session.advance()
	snap := session.snapshot()
	s.mu.Unlock()
	return snap, nil
}

func (s *uploadService) Skip(id uuid.UUID) (*domain.UploadSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrUploadSessionNotFound
	}
	switch session.state {
	case domain.UploadDone:
		return nil, domain.ErrUploadFinished
	case domain.UploadSubmitting:
		return nil, domain.ErrSubmissionInFlight
	}

	session.skipped++
	session.advance()
	return session.snapshot(), nil
}

// fail returns a session to Editing after a failed submission so the
// user can correct and retry the current file.
func (s *uploadService) fail(session *uploadSession) {
	s.mu.Lock()
	session.state = domain.UploadEditing
	s.mu.Unlock()
}
