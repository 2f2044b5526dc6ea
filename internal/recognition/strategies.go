package recognition

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	// Register decoders for every media type in the upload whitelist.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/ledongthuc/pdf"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"go-refolio-backend/internal/domain"
)

// Strategy names, reported back on the recognition result.
const (
	StrategyDirect   = "direct"
	StrategyTempFile = "temp-file"
	StrategyDecoded  = "decoded"
)

// embeddedTextConfidence is reported when a PDF carries a machine-readable
// text layer and no OCR pass was needed.
const embeddedTextConfidence = 95.0

// strategy is one alternative way to hand the document to the engine.
// Strategies run in order until one succeeds.
type strategy struct {
	name string
	run  func(ctx context.Context, w Worker, doc domain.RawDocument) (*domain.RecognitionResult, error)
}

// invocationChain is the ordered fallback chain: raw bytes first, then an
// ephemeral file handle, then a decoded re-encoding of the content.
func invocationChain() []strategy {
	return []strategy{
		{name: StrategyDirect, run: runDirect},
		{name: StrategyTempFile, run: runTempFile},
		{name: StrategyDecoded, run: runDecoded},
	}
}

// runDirect passes the upload bytes to the engine untouched.
func runDirect(ctx context.Context, w Worker, doc domain.RawDocument) (*domain.RecognitionResult, error) {
	return w.Recognize(ctx, Input{Data: doc.Data, ContentType: doc.ContentType})
}

// runTempFile spills the document to an ephemeral file and passes the
// handle. The file is removed on every exit path.
func runTempFile(ctx context.Context, w Worker, doc domain.RawDocument) (*domain.RecognitionResult, error) {
	tmp, err := os.CreateTemp("", "resume-*"+extensionFor(doc.ContentType))
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(doc.Data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	return w.Recognize(ctx, Input{Path: tmp.Name(), ContentType: doc.ContentType})
}

// runDecoded re-materializes the document content in memory: images are
// decoded to a raster and re-encoded as PNG before being handed to the
// engine; PDFs with an embedded text layer short-circuit recognition
// entirely.
func runDecoded(ctx context.Context, w Worker, doc domain.RawDocument) (*domain.RecognitionResult, error) {
	if doc.IsPDF() {
		text, err := pdfPlainText(doc.Data)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("pdf has no embedded text layer")
		}
		return &domain.RecognitionResult{
			Text:       text,
			Confidence: embeddedTextConfidence,
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("re-encoding image: %w", err)
	}

	return w.Recognize(ctx, Input{Data: buf.Bytes(), ContentType: "image/png"})
}

// pdfPlainText extracts the embedded text layer from a PDF.
func pdfPlainText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	stream, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
