//go:build unit

package localtime_test

import (
	"testing"
	"time"

	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/localtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTC(t *testing.T) {
	testCases := []struct {
		name       string
		date       string
		clock      string
		zone       string
		expected   time.Time
		expectKind errs.Kind
	}{
		{
			name:     "success: central daylight time",
			date:     "2026-06-03",
			clock:    "12:00",
			zone:     "America/Chicago",
			expected: time.Date(2026, 6, 3, 17, 0, 0, 0, time.UTC),
		},
		{
			name:     "success: central standard time",
			date:     "2026-01-15",
			clock:    "09:30",
			zone:     "America/Chicago",
			expected: time.Date(2026, 1, 15, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "success: surrounding whitespace is ignored",
			date:     " 2026-06-03 ",
			clock:    " 08:00",
			zone:     " UTC ",
			expected: time.Date(2026, 6, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			name:       "error: unknown zone",
			date:       "2026-06-03",
			clock:      "12:00",
			zone:       "Mars/Olympus",
			expectKind: errs.KindInvalidRequest,
		},
		{
			name:       "error: empty zone",
			date:       "2026-06-03",
			clock:      "12:00",
			zone:       "",
			expectKind: errs.KindInvalidRequest,
		},
		{
			name:       "error: malformed date",
			date:       "06/03/2026",
			clock:      "12:00",
			zone:       "America/Chicago",
			expectKind: errs.KindInvalidRequest,
		},
		{
			name:       "error: malformed clock",
			date:       "2026-06-03",
			clock:      "noon",
			zone:       "America/Chicago",
			expectKind: errs.KindInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := localtime.ToUTC(tc.date, tc.clock, tc.zone)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestWindow(t *testing.T) {
	t.Run("success: same-day window", func(t *testing.T) {
		start, end, err := localtime.Window("2026-06-03", "12:00", "16:00", "America/New_York")
		require.NoError(t, err)
		assert.True(t, time.Date(2026, 6, 3, 16, 0, 0, 0, time.UTC).Equal(start))
		assert.Equal(t, 4*time.Hour, end.Sub(start))
	})

	t.Run("error: end not after start", func(t *testing.T) {
		_, _, err := localtime.Window("2026-06-03", "16:00", "16:00", "America/Chicago")
		require.Error(t, err)
		assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
		assert.Equal(t, "16:00", errs.DetailOf(err)["startTime"])
	})
}

func TestResolveZone(t *testing.T) {
	assert.Equal(t, "America/Denver", localtime.ResolveZone(" America/Denver ", "America/Chicago"))
	assert.Equal(t, "America/Chicago", localtime.ResolveZone("  ", "America/Chicago"))
}

func TestDateOnlyUTC(t *testing.T) {
	d, err := localtime.DateOnlyUTC("2026-06-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), d)

	_, err = localtime.DateOnlyUTC("2026-13-01")
	assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
}

func TestFormatLocal(t *testing.T) {
	instant := time.Date(2026, 6, 3, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "12:00", localtime.FormatLocal(instant, "America/Chicago", localtime.ClockLayout))
	assert.Equal(t, "17:00", localtime.FormatLocal(instant, "", localtime.ClockLayout))
	assert.Equal(t, "17:00", localtime.FormatLocal(instant, "Not/AZone", localtime.ClockLayout))
}
