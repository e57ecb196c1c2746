package newssearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveDateRange_ValidPair verifies a well-formed ordered pair passes
// through unchanged
func TestResolveDateRange_ValidPair(t *testing.T) {
	start, end, err := ResolveDateRange("20240101", "20240315")

	require.NoError(t, err)
	assert.Equal(t, "20240101", start)
	assert.Equal(t, "20240315", end)
}

// TestResolveDateRange_SameDay verifies start == end is a valid range
func TestResolveDateRange_SameDay(t *testing.T) {
	start, end, err := ResolveDateRange("20240101", "20240101")

	require.NoError(t, err)
	assert.Equal(t, "20240101", start)
	assert.Equal(t, "20240101", end)
}

// TestResolveDateRange_BothEmpty verifies both bounds default to today
func TestResolveDateRange_BothEmpty(t *testing.T) {
	today := time.Now().Format("20060102")

	start, end, err := ResolveDateRange("", "")

	require.NoError(t, err)
	assert.Equal(t, today, start)
	assert.Equal(t, today, end)
}

// TestResolveDateRange_StartOnly verifies a missing end defaults to today
func TestResolveDateRange_StartOnly(t *testing.T) {
	today := time.Now().Format("20060102")

	start, end, err := ResolveDateRange("20240101", "")

	require.NoError(t, err)
	assert.Equal(t, "20240101", start)
	assert.Equal(t, today, end)
}

// TestResolveDateRange_Reversed verifies start after end fails with the
// range error
func TestResolveDateRange_Reversed(t *testing.T) {
	_, _, err := ResolveDateRange("20240315", "20240101")

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

// TestResolveDateRange_Malformed verifies malformed date strings fail with
// the format error
func TestResolveDateRange_Malformed(t *testing.T) {
	cases := map[string]string{
		"too short":        "2024011",
		"too long":         "202401011",
		"non-digit":        "2024010a",
		"dashed":           "2024-1-1",
		"impossible month": "20241301",
		"impossible day":   "20240132",
		"not a leap year":  "20230229",
		"whitespace":       "        ",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := ResolveDateRange(input, "20241231")
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
		})
	}
}

// TestResolveDateRange_MalformedEnd verifies the end date is validated
// independently of a valid start
func TestResolveDateRange_MalformedEnd(t *testing.T) {
	_, _, err := ResolveDateRange("20240101", "20240230")

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

// TestResolveDateRange_EmptyStartWithEnd verifies an end without a start is
// rejected as a format error
func TestResolveDateRange_EmptyStartWithEnd(t *testing.T) {
	_, _, err := ResolveDateRange("", "20240101")

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

// TestResolveDateRange_LeapDay verifies a real leap day parses
func TestResolveDateRange_LeapDay(t *testing.T) {
	start, end, err := ResolveDateRange("20240229", "20240301")

	require.NoError(t, err)
	assert.Equal(t, "20240229", start)
	assert.Equal(t, "20240301", end)
}
