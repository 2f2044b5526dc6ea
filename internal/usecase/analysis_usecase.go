package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-refolio-backend/internal/domain"
	"go-refolio-backend/internal/gap"
	"go-refolio-backend/pkg/apperror"
	"go-refolio-backend/pkg/validation"
)

type timelineAnalysisUsecase struct {
	analyzer      *gap.Analyzer
	toleranceDays int
	validate      *validator.Validate
}

func NewTimelineAnalysisUsecase(analyzer *gap.Analyzer, toleranceDays int, validate *validator.Validate) domain.TimelineAnalysisUsecase {
	return &timelineAnalysisUsecase{
		analyzer:      analyzer,
		toleranceDays: toleranceDays,
		validate:      validate,
	}
}

// AnalyzeTimeline detects gaps across the combined experience+education
// timeline and reconciles them against previously stored gap records so
// user annotations survive re-analysis.
func (u *timelineAnalysisUsecase) AnalyzeTimeline(ctx context.Context, req domain.GapAnalysisRequest) ([]domain.CareerGap, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := checkEntryDates(req.Experience); err != nil {
		return nil, err
	}
	if err := checkEntryDates(req.Education); err != nil {
		return nil, err
	}

	analyzer := u.analyzer
	if req.ThresholdDays > 0 {
		// Per-request override, used for testing thresholds without redeploy.
		analyzer = gap.New(req.ThresholdDays, u.toleranceDays)
	}

	detected := analyzer.AnalyzeCompleteTimeline(req.Experience, req.Education)
	return analyzer.MergeGapData(req.ExistingGaps, detected), nil
}

// TimelineChanged reports whether two timeline snapshots differ; callers use
// it to skip redundant re-analysis.
func (u *timelineAnalysisUsecase) TimelineChanged(ctx context.Context, req domain.TimelineChangedRequest) (bool, error) {
	if err := u.validate.Struct(req); err != nil {
		return false, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return gap.HasTimelineChanged(req.Previous, req.Current), nil
}

// checkEntryDates enforces the StartDate <= EndDate invariant, which
// struct tags cannot express across an optional field.
func checkEntryDates(entries []domain.TimelineEntry) error {
	for _, entry := range entries {
		if entry.EndDate != nil && entry.EndDate.Before(entry.StartDate) {
			return apperror.BadRequest("Timeline entry '" + entry.Title + "' ends before it starts")
		}
	}
	return nil
}
