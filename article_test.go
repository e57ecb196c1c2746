package newssearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewQuery_Valid verifies a fully specified query is built as given
func TestNewQuery_Valid(t *testing.T) {
	q, err := NewQuery("AI", "20240101", "20240102", 50)

	require.NoError(t, err)
	assert.Equal(t, Query{Keyword: "AI", Start: "20240101", End: "20240102", MaxItems: 50}, q)
}

// TestNewQuery_DefaultsDates verifies date resolution runs during
// construction
func TestNewQuery_DefaultsDates(t *testing.T) {
	today := time.Now().Format("20060102")

	q, err := NewQuery("AI", "", "", 10)

	require.NoError(t, err)
	assert.Equal(t, today, q.Start)
	assert.Equal(t, today, q.End)
}

// TestNewQuery_EmptyKeyword verifies an empty keyword is rejected
func TestNewQuery_EmptyKeyword(t *testing.T) {
	_, err := NewQuery("", "20240101", "20240102", 10)

	assert.Error(t, err)
}

// TestNewQuery_NonPositiveCap verifies a zero or negative item cap is
// rejected
func TestNewQuery_NonPositiveCap(t *testing.T) {
	_, err := NewQuery("AI", "20240101", "20240102", 0)
	assert.Error(t, err)

	_, err = NewQuery("AI", "20240101", "20240102", -5)
	assert.Error(t, err)
}

// TestNewQuery_PropagatesDateErrors verifies range and format errors
// surface through construction
func TestNewQuery_PropagatesDateErrors(t *testing.T) {
	_, err := NewQuery("AI", "20240201", "20240101", 10)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewQuery("AI", "bogus", "20240101", 10)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
