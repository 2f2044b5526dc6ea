package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-refolio-backend/internal/domain"
	"go-refolio-backend/internal/extractor"
	"go-refolio-backend/pkg/apperror"
	"go-refolio-backend/pkg/logger"
	"go-refolio-backend/pkg/security"
)

type resumePipelineUsecase struct {
	recognizer domain.Recognizer
}

func NewResumePipelineUsecase(recognizer domain.Recognizer) domain.ResumePipelineUsecase {
	return &resumePipelineUsecase{recognizer: recognizer}
}

// ProcessResume runs the full understanding pipeline for one upload:
// validate, recognize, extract. Validation failures return before any
// engine call; recognition failures surface only after the adapter's
// fallback chain is exhausted; extraction never fails.
func (u *resumePipelineUsecase) ProcessResume(ctx context.Context, doc domain.RawDocument, onProgress func(domain.RecognitionProgress)) (*domain.ResumeParseResult, error) {
	start := time.Now()
	stages := []string{"validating"}

	if err := security.ValidateDocument(doc); err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) {
			return nil, apperror.PayloadTooLarge("File exceeds the 10MB upload limit", err)
		}
		return nil, apperror.UnsupportedMedia(
			"File type is not supported. Allowed: "+strings.Join(security.SupportedTypes(), ", "), err)
	}

	stages = append(stages, "recognizing")
	recognized, err := u.recognizer.Recognize(ctx, doc, onProgress)
	if err != nil {
		logger.Log.Error("resume recognition exhausted all strategies",
			"filename", doc.Filename,
			"content_type", doc.ContentType,
			"error", err,
		)
		var failed *domain.RecognitionFailedError
		if errors.As(err, &failed) && errors.Is(failed.Cause, domain.ErrRecognitionTimeout) {
			return nil, apperror.GatewayTimeout("Text recognition timed out. Please try again or enter your details manually.", err)
		}
		return nil, apperror.BadGateway("Text recognition failed. Please enter your details manually.", err)
	}

	stages = append(stages, "extracting")
	fragment := extractor.Extract(recognized.Text)
	stages = append(stages, "complete")

	return &domain.ResumeParseResult{
		Fragment:      fragment,
		Confidence:    recognized.Confidence,
		Strategy:      recognized.Strategy,
		ProcessingMS:  time.Since(start).Milliseconds(),
		Stages:        stages,
		ExtractedText: recognized.Text,
	}, nil
}
