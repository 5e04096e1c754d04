package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUploadSessionNotFound = errors.New("upload session not found")
	ErrNoFilesSelected       = errors.New("at least one file must be selected")
	ErrUploadFinished        = errors.New("upload session already finished")
	ErrSubmissionInFlight    = errors.New("a submission is already in progress")
)

// UploadState is one state of the per-file upload machine.
type UploadState string

const (
	// UploadEditing: metadata for the current file is being entered.
	UploadEditing UploadState = "editing"
	// UploadSubmitting: the current file's insert is in flight. Further
	// submit and skip calls are rejected until it settles.
	UploadSubmitting UploadState = "submitting"
	// UploadDone: every file was submitted or skipped.
	UploadDone UploadState = "done"
)

// UploadSnapshot is the externally visible state of an upload session.
type UploadSnapshot struct {
	ID          uuid.UUID   `json:"id"`
	State       UploadState `json:"state"`
	FileNames   []string    `json:"file_names"`
	Index       int         `json:"index"`
	CurrentFile string      `json:"current_file,omitempty"`
	Submitted   int         `json:"submitted"`
	Skipped     int         `json:"skipped"`
}

// StartUploadInput opens a session over the user's selected files.
type StartUploadInput struct {
	FileNames []string `json:"files"`
}
