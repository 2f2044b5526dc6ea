package gap_test

import (
	"testing"
	"time"

	"go-refolio-backend/internal/domain"
	"go-refolio-backend/internal/gap"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func entry(id, title, org string, start time.Time, end *time.Time) domain.TimelineEntry {
	return domain.TimelineEntry{
		ID:           id,
		Title:        title,
		Organization: org,
		StartDate:    start,
		EndDate:      end,
	}
}

func TestDetectGaps(t *testing.T) {
	analyzer := gap.New(90, 1)

	t.Run("Should find one gap between two separated jobs", func(t *testing.T) {
		entries := []domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
			entry("b", "Engineer", "Globex", date(2023, 1, 1), nil),
		}

		gaps := analyzer.DetectGaps(entries)

		assert.Len(t, gaps, 1)
		assert.Equal(t, date(2022, 6, 1), gaps[0].StartDate)
		assert.Equal(t, date(2023, 1, 1), gaps[0].EndDate)
		assert.Equal(t, 214, gaps[0].DurationDays)
		assert.Equal(t, domain.SeverityModerate, gaps[0].Severity)
		assert.Equal(t, domain.GapTypeEmployment, gaps[0].Type)
		assert.False(t, gaps[0].IsResolved)
	})

	t.Run("Should return no gap at exactly the threshold", func(t *testing.T) {
		entries := []domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
			entry("b", "Engineer", "Globex", date(2022, 6, 1).AddDate(0, 0, 90), nil),
		}
		assert.Empty(t, analyzer.DetectGaps(entries))
	})

	t.Run("Should return no gap one day under the threshold", func(t *testing.T) {
		entries := []domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
			entry("b", "Engineer", "Globex", date(2022, 6, 1).AddDate(0, 0, 89), nil),
		}
		assert.Empty(t, analyzer.DetectGaps(entries))
	})

	t.Run("Should return a gap one day over the threshold", func(t *testing.T) {
		entries := []domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
			entry("b", "Engineer", "Globex", date(2022, 6, 1).AddDate(0, 0, 91), nil),
		}

		gaps := analyzer.DetectGaps(entries)
		assert.Len(t, gaps, 1)
		assert.Equal(t, 91, gaps[0].DurationDays)
		assert.Equal(t, domain.SeverityMinor, gaps[0].Severity)
	})

	t.Run("Should sort unordered entries before scanning", func(t *testing.T) {
		entries := []domain.TimelineEntry{
			entry("b", "Engineer", "Globex", date(2023, 1, 1), nil),
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
		}

		gaps := analyzer.DetectGaps(entries)
		assert.Len(t, gaps, 1)
		assert.Equal(t, date(2022, 6, 1), gaps[0].StartDate)
	})

	t.Run("Should return empty for fewer than two entries", func(t *testing.T) {
		assert.Empty(t, analyzer.DetectGaps(nil))
		assert.Empty(t, analyzer.DetectGaps([]domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), nil),
		}))
	})

	t.Run("Should use the clock as end of an ongoing entry", func(t *testing.T) {
		pinned := date(2023, 6, 1)
		clocked := gap.New(90, 1, gap.WithClock(func() time.Time { return pinned }))

		entries := []domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), nil), // ongoing, ends "now"
			entry("b", "Engineer", "Globex", date(2024, 1, 1), nil),
		}

		gaps := clocked.DetectGaps(entries)
		assert.Len(t, gaps, 1)
		assert.Equal(t, pinned, gaps[0].StartDate)
		assert.Equal(t, 214, gaps[0].DurationDays)
	})

	t.Run("Should classify severity by duration bands", func(t *testing.T) {
		cases := []struct {
			days int
			want domain.GapSeverity
		}{
			{120, domain.SeverityMinor},
			{180, domain.SeverityMinor},
			{181, domain.SeverityModerate},
			{365, domain.SeverityModerate},
			{366, domain.SeverityMajor},
			{900, domain.SeverityMajor},
		}
		for _, tc := range cases {
			entries := []domain.TimelineEntry{
				entry("a", "Engineer", "Acme", date(2015, 1, 1), datePtr(2016, 1, 1)),
				entry("b", "Engineer", "Globex", date(2016, 1, 1).AddDate(0, 0, tc.days), nil),
			}
			gaps := analyzer.DetectGaps(entries)
			assert.Len(t, gaps, 1)
			assert.Equal(t, tc.want, gaps[0].Severity, "days=%d", tc.days)
		}
	})

	t.Run("Should type a gap adjacent to education as education", func(t *testing.T) {
		entries := []domain.TimelineEntry{
			entry("a", "BSc Computer Science", "State University", date(2018, 9, 1), datePtr(2022, 6, 1)),
			entry("b", "Engineer", "Globex", date(2023, 1, 1), nil),
		}

		gaps := analyzer.DetectGaps(entries)
		assert.Len(t, gaps, 1)
		assert.Equal(t, domain.GapTypeEducation, gaps[0].Type)
	})

	t.Run("Should not mutate the caller's slice", func(t *testing.T) {
		entries := []domain.TimelineEntry{
			entry("b", "Engineer", "Globex", date(2023, 1, 1), nil),
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
		}
		analyzer.DetectGaps(entries)
		assert.Equal(t, "b", entries[0].ID)
	})

	t.Run("Should fall back to defaults on non-positive config", func(t *testing.T) {
		fallback := gap.New(0, 0)
		assert.Equal(t, gap.DefaultThresholdDays, fallback.ThresholdDays())
	})
}

func TestGapID(t *testing.T) {
	t.Run("Should be stable for the same endpoints", func(t *testing.T) {
		a := gap.GapID(date(2022, 6, 1), date(2023, 1, 1))
		b := gap.GapID(date(2022, 6, 1), date(2023, 1, 1))
		assert.Equal(t, a, b)
	})

	t.Run("Should differ when endpoints differ", func(t *testing.T) {
		a := gap.GapID(date(2022, 6, 1), date(2023, 1, 1))
		b := gap.GapID(date(2022, 6, 2), date(2023, 1, 1))
		assert.NotEqual(t, a, b)
	})

	t.Run("Should match across repeated detection runs", func(t *testing.T) {
		analyzer := gap.New(90, 1)
		entries := []domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
			entry("b", "Engineer", "Globex", date(2023, 1, 1), nil),
		}

		first := analyzer.DetectGaps(entries)
		second := analyzer.DetectGaps(entries)
		assert.Equal(t, first[0].ID, second[0].ID)
	})
}

func TestAnalyzeCompleteTimeline(t *testing.T) {
	analyzer := gap.New(90, 1)

	t.Run("Should span gaps across education and experience", func(t *testing.T) {
		education := []domain.TimelineEntry{
			entry("edu", "BSc Computer Science", "State University", date(2018, 9, 1), datePtr(2022, 6, 1)),
		}
		experience := []domain.TimelineEntry{
			entry("job", "Engineer", "Globex", date(2023, 1, 1), nil),
		}

		gaps := analyzer.AnalyzeCompleteTimeline(experience, education)
		assert.Len(t, gaps, 1)
		assert.Equal(t, domain.GapTypeEducation, gaps[0].Type)
	})
}

func TestMergeGapData(t *testing.T) {
	analyzer := gap.New(90, 1)

	detected := func() []domain.CareerGap {
		return []domain.CareerGap{{
			ID:           gap.GapID(date(2022, 6, 1), date(2023, 1, 1)),
			StartDate:    date(2022, 6, 1),
			EndDate:      date(2023, 1, 1),
			DurationDays: 214,
			Type:         domain.GapTypeEmployment,
			Severity:     domain.SeverityModerate,
		}}
	}

	t.Run("Should preserve annotations of a matching stored gap", func(t *testing.T) {
		createdAt := date(2024, 1, 15)
		existing := []domain.CareerGap{{
			ID:         "stored-id",
			StartDate:  date(2022, 6, 2), // one day off, inside tolerance
			EndDate:    date(2023, 1, 1),
			IsResolved: true,
			Notes:      "Sabbatical",
			CreatedAt:  createdAt,
		}}

		merged := analyzer.MergeGapData(existing, detected())

		assert.Len(t, merged, 1)
		assert.Equal(t, "stored-id", merged[0].ID)
		assert.True(t, merged[0].IsResolved)
		assert.Equal(t, "Sabbatical", merged[0].Notes)
		assert.Equal(t, createdAt, merged[0].CreatedAt)
		assert.Equal(t, 214, merged[0].DurationDays) // recomputed facts kept
	})

	t.Run("Should not match a stored gap outside the tolerance", func(t *testing.T) {
		existing := []domain.CareerGap{{
			ID:        "stored-id",
			StartDate: date(2022, 6, 4), // three days off
			EndDate:   date(2023, 1, 1),
			Notes:     "Sabbatical",
		}}

		merged := analyzer.MergeGapData(existing, detected())

		assert.Len(t, merged, 1)
		assert.NotEqual(t, "stored-id", merged[0].ID)
		assert.Empty(t, merged[0].Notes)
	})

	t.Run("Should match each stored gap at most once", func(t *testing.T) {
		existing := []domain.CareerGap{{
			ID:        "stored-id",
			StartDate: date(2022, 6, 1),
			EndDate:   date(2023, 1, 1),
			Notes:     "Sabbatical",
		}}
		twice := append(detected(), detected()...)

		merged := analyzer.MergeGapData(existing, twice)

		assert.Len(t, merged, 2)
		assert.Equal(t, "stored-id", merged[0].ID)
		assert.NotEqual(t, "stored-id", merged[1].ID)
		assert.Empty(t, merged[1].Notes)
	})

	t.Run("Should carry forward an unmatched resolved gap", func(t *testing.T) {
		existing := []domain.CareerGap{{
			ID:         "resolved-id",
			StartDate:  date(2019, 1, 1),
			EndDate:    date(2019, 8, 1),
			IsResolved: true,
			Notes:      "Parental leave",
		}}

		merged := analyzer.MergeGapData(existing, detected())

		assert.Len(t, merged, 2)
		assert.Equal(t, "resolved-id", merged[1].ID)
		assert.Equal(t, "Parental leave", merged[1].Notes)
	})

	t.Run("Should drop an unmatched unresolved gap as stale", func(t *testing.T) {
		existing := []domain.CareerGap{{
			ID:        "stale-id",
			StartDate: date(2019, 1, 1),
			EndDate:   date(2019, 8, 1),
		}}

		merged := analyzer.MergeGapData(existing, detected())

		assert.Len(t, merged, 1)
		assert.NotEqual(t, "stale-id", merged[0].ID)
	})

	t.Run("Should handle empty inputs", func(t *testing.T) {
		assert.Empty(t, analyzer.MergeGapData(nil, nil))
		assert.Len(t, analyzer.MergeGapData(nil, detected()), 1)
	})
}

func TestHasTimelineChanged(t *testing.T) {
	base := func() []domain.TimelineEntry {
		return []domain.TimelineEntry{
			entry("a", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1)),
			entry("b", "Senior Engineer", "Globex", date(2023, 1, 1), nil),
		}
	}

	t.Run("Should report no change for a reordered copy", func(t *testing.T) {
		reordered := []domain.TimelineEntry{base()[1], base()[0]}
		assert.False(t, gap.HasTimelineChanged(base(), reordered))
	})

	t.Run("Should report change on differing length", func(t *testing.T) {
		assert.True(t, gap.HasTimelineChanged(base(), base()[:1]))
	})

	t.Run("Should report change on an edited title", func(t *testing.T) {
		current := base()
		current[0].Title = "Staff Engineer"
		assert.True(t, gap.HasTimelineChanged(base(), current))
	})

	t.Run("Should report change when an entry becomes ongoing", func(t *testing.T) {
		current := base()
		current[0].EndDate = nil
		assert.True(t, gap.HasTimelineChanged(base(), current))
	})

	t.Run("Should report no change when reordered entries share id and start", func(t *testing.T) {
		// Extracted entries carry no id yet, so several can collide on
		// (id, start); the comparison must still line them up.
		a := entry("", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1))
		b := entry("", "Consultant", "Globex", date(2022, 1, 1), nil)

		assert.False(t, gap.HasTimelineChanged(
			[]domain.TimelineEntry{a, b},
			[]domain.TimelineEntry{b, a},
		))
	})

	t.Run("Should report change when a colliding entry is edited", func(t *testing.T) {
		a := entry("", "Engineer", "Acme", date(2022, 1, 1), datePtr(2022, 6, 1))
		b := entry("", "Consultant", "Globex", date(2022, 1, 1), nil)
		edited := b
		edited.Organization = "Initech"

		assert.True(t, gap.HasTimelineChanged(
			[]domain.TimelineEntry{a, b},
			[]domain.TimelineEntry{edited, a},
		))
	})

	t.Run("Should report no change for two empty timelines", func(t *testing.T) {
		assert.False(t, gap.HasTimelineChanged(nil, nil))
	})
}
