package newssearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDedupe_FirstOccurrenceWins verifies duplicates keep the earliest
// record and its title
func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	records := []Article{
		{Title: "First", Link: "http://example.com/a"},
		{Title: "Other", Link: "http://example.com/b"},
		{Title: "Second spelling", Link: "http://example.com/a"},
	}

	out := Dedupe(records)

	assert.Equal(t, []Article{
		{Title: "First", Link: "http://example.com/a"},
		{Title: "Other", Link: "http://example.com/b"},
	}, out)
}

// TestDedupe_PreservesOrder verifies discovery order survives deduplication
func TestDedupe_PreservesOrder(t *testing.T) {
	records := []Article{
		{Title: "C", Link: "http://example.com/c"},
		{Title: "A", Link: "http://example.com/a"},
		{Title: "B", Link: "http://example.com/b"},
		{Title: "A again", Link: "http://example.com/a"},
	}

	out := Dedupe(records)

	links := make([]string, 0, len(out))
	for _, record := range out {
		links = append(links, record.Link)
	}
	assert.Equal(t, []string{"http://example.com/c", "http://example.com/a", "http://example.com/b"}, links)
}

// TestDedupe_Idempotent verifies a second pass changes nothing
func TestDedupe_Idempotent(t *testing.T) {
	records := []Article{
		{Title: "A", Link: "http://example.com/a"},
		{Title: "B", Link: "http://example.com/b"},
		{Title: "A", Link: "http://example.com/a"},
	}

	once := Dedupe(records)
	twice := Dedupe(once)

	assert.Equal(t, once, twice)
}

// TestDedupe_Empty verifies an empty input stays empty
func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
