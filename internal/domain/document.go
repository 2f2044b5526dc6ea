package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// MaxDocumentSize is the hard ceiling for uploaded resume documents (10 MiB).
const MaxDocumentSize = 10 * 1024 * 1024

// AllowedDocumentTypes is the strict media-type whitelist for resume uploads.
var AllowedDocumentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/bmp":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// RawDocument is an uploaded resume file. It is ephemeral: it exists only for
// the duration of a single recognition call and is never persisted.
type RawDocument struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// IsPDF reports whether the declared media type is PDF.
func (d RawDocument) IsPDF() bool {
	return d.ContentType == "application/pdf"
}

// RecognitionResult is the outcome of one successful recognition run.
type RecognitionResult struct {
	Text       string        `json:"text"`
	Confidence float64       `json:"confidence"` // 0..100
	Strategy   string        `json:"strategy"`   // which invocation strategy produced the text
	Duration   time.Duration `json:"-"`
}

// RecognitionProgress is an advisory status update emitted while a document
// is being recognized. It never gates correctness.
type RecognitionProgress struct {
	Stage   string `json:"stage"` // initializing, processing, complete
	Percent int    `json:"percent"`
	Message string `json:"message,omitempty"`
}

// Progress stage names.
const (
	StageInitializing = "initializing"
	StageProcessing   = "processing"
	StageComplete     = "complete"
)

// Validation errors. Both are terminal: the caller must not retry with the
// same file.
var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("file media type is not supported")
)

// ErrRecognitionTimeout marks a single recognition attempt that was abandoned
// after its deadline. Internal to the fallback chain; callers only see it as
// the cause of a RecognitionFailedError.
var ErrRecognitionTimeout = errors.New("recognition attempt timed out")

// RecognitionFailedError is returned only after every invocation strategy in
// the fallback chain has been exhausted.
type RecognitionFailedError struct {
	Cause error
}

func (e *RecognitionFailedError) Error() string {
	return fmt.Sprintf("recognition failed: %v", e.Cause)
}

func (e *RecognitionFailedError) Unwrap() error { return e.Cause }

// Recognizer drives an external text-recognition engine over a resilient
// fallback chain. onProgress may be nil.
type Recognizer interface {
	Recognize(ctx context.Context, doc RawDocument, onProgress func(RecognitionProgress)) (*RecognitionResult, error)
	Terminate() error
}
