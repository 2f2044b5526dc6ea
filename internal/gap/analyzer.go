// Package gap detects periods of inactivity in a professional timeline and
// reconciles freshly detected gaps with previously stored, possibly
// user-annotated records.
package gap

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-refolio-backend/internal/domain"
)

const (
	// DefaultThresholdDays is the inactivity threshold above which a gap exists.
	DefaultThresholdDays = 90
	// DefaultToleranceDays is the matching window used when reconciling a
	// detected gap against a stored one.
	DefaultToleranceDays = 1

	minorMaxDays    = 180
	moderateMaxDays = 365
)

// gapNamespace seeds deterministic gap IDs. Changing it (or the ID input
// format) breaks matching of "the same gap" across re-analysis and silently
// drops user annotations.
var gapNamespace = uuid.MustParse("a3a8f2a6-1d0b-4a5e-9a47-67c03a2f5d18")

// Keywords that mark an adjacent timeline entry as educational, switching
// the gap type from employment to education.
var educationKeywords = []string{
	"university", "college", "school", "institute", "academy",
	"bachelor", "master", "phd", "degree", "education",
}

// Analyzer holds the configuration for one analysis run. The zero value is
// not usable; construct with New.
type Analyzer struct {
	thresholdDays int
	toleranceDays int
	now           func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithClock replaces the wall clock used as the effective end of ongoing
// entries. Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New builds an Analyzer. Non-positive thresholdDays or toleranceDays fall
// back to the defaults.
func New(thresholdDays, toleranceDays int, opts ...Option) *Analyzer {
	a := &Analyzer{
		thresholdDays: thresholdDays,
		toleranceDays: toleranceDays,
		now:           time.Now,
	}
	if a.thresholdDays <= 0 {
		a.thresholdDays = DefaultThresholdDays
	}
	if a.toleranceDays <= 0 {
		a.toleranceDays = DefaultToleranceDays
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ThresholdDays reports the configured inactivity threshold.
func (a *Analyzer) ThresholdDays() int { return a.thresholdDays }

// GapID derives the deterministic identifier for a gap between two dates.
// Same (start, end) always yields the same UUID.
func GapID(start, end time.Time) string {
	key := start.UTC().Format("2006-01-02") + "/" + end.UTC().Format("2006-01-02")
	return uuid.NewSHA1(gapNamespace, []byte(key)).String()
}

// DetectGaps scans adjacent timeline entries (sorted by start date) and
// returns every gap whose duration exceeds the threshold. The input slice is
// never mutated.
func (a *Analyzer) DetectGaps(entries []domain.TimelineEntry) []domain.CareerGap {
	if len(entries) < 2 {
		return []domain.CareerGap{}
	}

	sorted := make([]domain.TimelineEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	now := a.now()
	gaps := []domain.CareerGap{}
	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i], sorted[i+1]

		effectiveEnd := now
		if current.EndDate != nil {
			effectiveEnd = *current.EndDate
		}

		gapDays := int(next.StartDate.Sub(effectiveEnd).Hours() / 24)
		if gapDays <= a.thresholdDays {
			continue
		}

		gaps = append(gaps, domain.CareerGap{
			ID:           GapID(effectiveEnd, next.StartDate),
			StartDate:    effectiveEnd,
			EndDate:      next.StartDate,
			DurationDays: gapDays,
			Type:         classifyGapType(current, next),
			Severity:     classifySeverity(gapDays),
			IsResolved:   false,
			CreatedAt:    now,
		})
	}
	return gaps
}

// AnalyzeCompleteTimeline concatenates experience and education entries and
// detects gaps across the combined timeline, so a gap between the end of a
// degree and the start of a job is found the same way as one between jobs.
func (a *Analyzer) AnalyzeCompleteTimeline(experience, education []domain.TimelineEntry) []domain.CareerGap {
	combined := make([]domain.TimelineEntry, 0, len(experience)+len(education))
	combined = append(combined, experience...)
	combined = append(combined, education...)
	return a.DetectGaps(combined)
}

// MergeGapData reconciles freshly detected gaps with previously stored ones.
//
// A detected gap matches a stored gap when both endpoints fall within the
// tolerance window. On a match the detected gap keeps its recomputed facts
// (dates, duration, type, severity) but carries over the stored record's ID,
// IsResolved, Notes and CreatedAt, so human annotations survive re-analysis.
// Each stored record matches at most one detected gap; the first detected
// gap in order wins the match.
//
// Stored gaps with IsResolved=true that match nothing are carried forward
// unchanged: a user's "this gap is explained" judgment is not erased merely
// because a timeline edit closed the gap or shifted its dates. Unresolved
// stored gaps with no match are dropped as stale.
func (a *Analyzer) MergeGapData(existing, detected []domain.CareerGap) []domain.CareerGap {
	tolerance := time.Duration(a.toleranceDays) * 24 * time.Hour
	claimed := make([]bool, len(existing))

	merged := make([]domain.CareerGap, 0, len(detected))
	for _, d := range detected {
		out := d
		for i, e := range existing {
			if claimed[i] {
				continue
			}
			if withinTolerance(e.StartDate, d.StartDate, tolerance) &&
				withinTolerance(e.EndDate, d.EndDate, tolerance) {
				out.ID = e.ID
				out.IsResolved = e.IsResolved
				out.Notes = e.Notes
				out.CreatedAt = e.CreatedAt
				claimed[i] = true
				break
			}
		}
		merged = append(merged, out)
	}

	for i, e := range existing {
		if !claimed[i] && e.IsResolved {
			merged = append(merged, e)
		}
	}
	return merged
}

// HasTimelineChanged reports whether two timeline snapshots differ under a
// canonical sort and field comparison (id, start, end, title, organization).
// Callers use it to skip redundant re-analysis.
func HasTimelineChanged(previous, current []domain.TimelineEntry) bool {
	if len(previous) != len(current) {
		return true
	}

	prev := canonical(previous)
	curr := canonical(current)
	for i := range prev {
		if !sameEntry(prev[i], curr[i]) {
			return true
		}
	}
	return false
}

// canonical sorts on every compared field so that permuted-but-equal
// snapshots always line up, even when entries share an ID and start date.
func canonical(entries []domain.TimelineEntry) []domain.TimelineEntry {
	sorted := make([]domain.TimelineEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entryLess(sorted[i], sorted[j])
	})
	return sorted
}

func entryLess(a, b domain.TimelineEntry) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	if !a.StartDate.Equal(b.StartDate) {
		return a.StartDate.Before(b.StartDate)
	}
	switch {
	case a.EndDate == nil && b.EndDate != nil:
		return false // ongoing sorts after any closed entry
	case a.EndDate != nil && b.EndDate == nil:
		return true
	case a.EndDate != nil && b.EndDate != nil && !a.EndDate.Equal(*b.EndDate):
		return a.EndDate.Before(*b.EndDate)
	}
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return a.Organization < b.Organization
}

func sameEntry(a, b domain.TimelineEntry) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Organization != b.Organization {
		return false
	}
	if !a.StartDate.Equal(b.StartDate) {
		return false
	}
	if (a.EndDate == nil) != (b.EndDate == nil) {
		return false
	}
	if a.EndDate != nil && !a.EndDate.Equal(*b.EndDate) {
		return false
	}
	return true
}

func withinTolerance(a, b time.Time, tolerance time.Duration) bool {
	delta := a.Sub(b)
	if delta < 0 {
		delta = -delta
	}
	return delta <= tolerance
}

func classifyGapType(current, next domain.TimelineEntry) domain.GapType {
	if isEducational(current) || isEducational(next) {
		return domain.GapTypeEducation
	}
	return domain.GapTypeEmployment
}

func isEducational(entry domain.TimelineEntry) bool {
	haystack := strings.ToLower(entry.Title + " " + entry.Organization)
	for _, kw := range educationKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func classifySeverity(days int) domain.GapSeverity {
	switch {
	case days <= minorMaxDays:
		return domain.SeverityMinor
	case days <= moderateMaxDays:
		return domain.SeverityModerate
	default:
		return domain.SeverityMajor
	}
}
