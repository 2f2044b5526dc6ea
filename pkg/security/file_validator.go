package security

import (
	"bytes"
	"fmt"
	"sort"

	"go-refolio-backend/internal/domain"
)

// Magic byte signatures keyed by declared media type. A type maps to every
// byte prefix it may legitimately start with.
var magicBytes = map[string][][]byte{
	"image/jpeg":      {{0xFF, 0xD8, 0xFF}},
	"image/jpg":       {{0xFF, 0xD8, 0xFF}},
	"image/png":       {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"image/gif":       {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	"image/bmp":       {{0x42, 0x4D}},                                                               // BM
	"image/webp":      {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	"application/pdf": {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
}

// ValidateDocument performs 3-layer validation of an uploaded resume before
// any recognition engine call:
// 1. Declared media type against the strict whitelist
// 2. Size against the hard ceiling
// 3. Magic byte verification (content matches the declared type)
//
// It is pure and synchronous; failures are terminal for this file.
func ValidateDocument(doc domain.RawDocument) error {
	if !domain.AllowedDocumentTypes[doc.ContentType] {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedType, doc.ContentType)
	}

	if doc.Size > domain.MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", domain.ErrFileTooLarge, doc.Size, domain.MaxDocumentSize)
	}

	// Content sniffing: reject files whose bytes do not match the declared
	// type (potential file spoofing).
	if !matchesMagicBytes(doc.ContentType, doc.Data) {
		return fmt.Errorf("%w: content does not match declared type %s", domain.ErrUnsupportedType, doc.ContentType)
	}

	return nil
}

// matchesMagicBytes checks if file content starts with one of the expected
// prefixes for the declared type.
func matchesMagicBytes(contentType string, data []byte) bool {
	signatures, ok := magicBytes[contentType]
	if !ok {
		return false
	}
	if len(data) < 4 {
		return false // too small to be any supported document
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// SupportedTypes returns the whitelist in stable order, for error messages
// and the health/docs endpoints.
func SupportedTypes() []string {
	types := make([]string, 0, len(domain.AllowedDocumentTypes))
	for t := range domain.AllowedDocumentTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
