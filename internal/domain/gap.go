package domain

import (
	"context"
	"time"
)

// GapType classifies what kind of timeline a gap sits between.
type GapType string

const (
	GapTypeEmployment GapType = "employment"
	GapTypeEducation  GapType = "education"
)

// GapSeverity buckets a gap by its duration.
type GapSeverity string

const (
	SeverityMinor    GapSeverity = "minor"    // <= 180 days
	SeverityModerate GapSeverity = "moderate" // 181..365 days
	SeverityMajor    GapSeverity = "major"    // > 365 days
)

// CareerGap is a detected period of inactivity between two timeline entries.
//
// The ID is derived deterministically from (StartDate, EndDate) so that
// re-analysis of an unchanged timeline yields the same identifier; the
// reconciliation algorithm depends on this to match freshly detected gaps
// against previously stored, user-annotated records.
type CareerGap struct {
	ID           string      `json:"id"`
	StartDate    time.Time   `json:"start_date" validate:"required"`
	EndDate      time.Time   `json:"end_date" validate:"required"`
	DurationDays int         `json:"duration_days"`
	Type         GapType     `json:"type"`
	Severity     GapSeverity `json:"severity"`
	IsResolved   bool        `json:"is_resolved"`
	Notes        string      `json:"notes,omitempty" validate:"max=2000,no_emoji"`
	CreatedAt    time.Time   `json:"created_at"`
}

// GapAnalysisRequest carries a timeline to analyze plus any previously
// stored gap records to reconcile against. ThresholdDays overrides the
// configured inactivity threshold when positive.
type GapAnalysisRequest struct {
	Experience    []TimelineEntry `json:"experience" validate:"dive"`
	Education     []TimelineEntry `json:"education" validate:"dive"`
	ExistingGaps  []CareerGap     `json:"existing_gaps" validate:"dive"`
	ThresholdDays int             `json:"threshold_days" validate:"omitempty,min=1,max=3650"`
}

// TimelineChangedRequest compares two timeline snapshots.
type TimelineChangedRequest struct {
	Previous []TimelineEntry `json:"previous" validate:"dive"`
	Current  []TimelineEntry `json:"current" validate:"dive"`
}

// TimelineAnalysisUsecase exposes gap detection and reconciliation.
type TimelineAnalysisUsecase interface {
	AnalyzeTimeline(ctx context.Context, req GapAnalysisRequest) ([]CareerGap, error)
	TimelineChanged(ctx context.Context, req TimelineChangedRequest) (bool, error)
}
