package newssearch

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedEntry is one feed item before date filtering. PublishedAt is nil when
// the feed carried no parseable publication timestamp; such entries pass the
// date filter unconditionally because there is nothing to compare.
type FeedEntry struct {
	Title       string
	Link        string
	PublishedAt *time.Time
}

// parseFeed parses a structured feed document into entries. The gofeed
// library detects RSS vs Atom on its own and normalizes RFC-2822 style
// pubDate timestamps into PublishedParsed. Entries missing a title or link
// are skipped; a malformed document yields an error the caller treats as a
// soft parse failure.
func parseFeed(data []byte) ([]FeedEntry, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		entries = append(entries, FeedEntry{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: item.PublishedParsed,
		})
	}
	return entries, nil
}

// withinWindow reports whether a publication time falls inside the inclusive
// YYYYMMDD window. A nil publication time is treated as in-window.
func withinWindow(publishedAt *time.Time, start, end string) bool {
	if publishedAt == nil {
		return true
	}
	day := publishedAt.UTC().Format(dateLayout)
	return day >= start && day <= end
}
