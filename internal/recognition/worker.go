// Package recognition drives an external text-recognition engine through an
// ordered fallback chain with per-attempt timeouts. The engine is a black
// box that is unreliable about which input encodings it accepts; the chain
// trades latency for robustness.
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"go-refolio-backend/internal/domain"
)

// Input is one attempt's payload for the engine: either inline bytes or a
// path to an ephemeral local copy of the document.
type Input struct {
	Data        []byte
	Path        string
	ContentType string
}

// Worker is a long-lived handle on the recognition engine. Workers are
// expensive to create and are reused across calls; they process at most one
// recognition at a time.
type Worker interface {
	Start(ctx context.Context) error
	Recognize(ctx context.Context, input Input) (*domain.RecognitionResult, error)
	Close() error
}

// HTTPWorker talks to an OCR engine over HTTP. Contract: GET /healthz for
// liveness, POST /recognize with the document bytes in the body and the
// declared media type in Content-Type; the engine answers with
// {"text": "...", "confidence": 0..100}.
type HTTPWorker struct {
	baseURL string
	client  *http.Client
}

func NewHTTPWorker(baseURL string) *HTTPWorker {
	return &HTTPWorker{
		baseURL: baseURL,
		// No client timeout: per-attempt deadlines come from the caller's
		// context.
		client: &http.Client{},
	}
}

func (w *HTTPWorker) Start(ctx context.Context) error {
	if w.baseURL == "" {
		return fmt.Errorf("recognition engine URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("recognition engine unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("recognition engine unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (w *HTTPWorker) Recognize(ctx context.Context, input Input) (*domain.RecognitionResult, error) {
	body, size, err := inputBody(input)
	if err != nil {
		return nil, err
	}
	if closer, ok := body.(io.Closer); ok {
		defer closer.Close()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/recognize", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", input.ContentType)
	req.ContentLength = size

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("recognition engine returned status %d: %s", resp.StatusCode, snippet)
	}

	var payload struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding recognition response: %w", err)
	}

	return &domain.RecognitionResult{
		Text:       payload.Text,
		Confidence: payload.Confidence,
	}, nil
}

func (w *HTTPWorker) Close() error {
	w.client.CloseIdleConnections()
	return nil
}

// inputBody resolves an Input to a request body, streaming from disk when
// the attempt handed over a file path instead of inline bytes.
func inputBody(input Input) (io.Reader, int64, error) {
	if input.Path != "" {
		f, err := os.Open(input.Path)
		if err != nil {
			return nil, 0, err
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, 0, err
		}
		return f, info.Size(), nil
	}
	return bytes.NewReader(input.Data), int64(len(input.Data)), nil
}
