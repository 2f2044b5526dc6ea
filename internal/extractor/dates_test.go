package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("Should parse a closed year range", func(t *testing.T) {
		start, end, ok := parseDateRange("2019-2022")

		require.True(t, ok)
		assert.Equal(t, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("Should parse an open range as ongoing", func(t *testing.T) {
		for _, marker := range []string{"present", "Present", "current", "ongoing"} {
			start, end, ok := parseDateRange("2020-" + marker)

			require.True(t, ok, marker)
			assert.Equal(t, 2020, start.Year())
			assert.Nil(t, end)
		}
	})

	t.Run("Should expand a bare year to the full year", func(t *testing.T) {
		start, end, ok := parseDateRange("2020")

		require.True(t, ok)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("Should tolerate spaces and an en dash", func(t *testing.T) {
		start, _, ok := parseDateRange("2019 – 2022")
		require.True(t, ok)
		assert.Equal(t, 2019, start.Year())
	})

	t.Run("Should reject a reversed range", func(t *testing.T) {
		_, _, ok := parseDateRange("2022-2019")
		assert.False(t, ok)
	})

	t.Run("Should reject implausible years", func(t *testing.T) {
		for _, s := range []string{"1850-1860", "2150", "2020-2150"} {
			_, _, ok := parseDateRange(s)
			assert.False(t, ok, s)
		}
	})

	t.Run("Should reject shapes it does not recognize", func(t *testing.T) {
		for _, s := range []string{"", "Jan 2020 - Mar 2022", "2020-", "20-22", "circa 2020"} {
			_, _, ok := parseDateRange(s)
			assert.False(t, ok, s)
		}
	})
}
