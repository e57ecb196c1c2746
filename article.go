package newssearch

import "fmt"

// Article is a single search hit: a headline and the URL it points at. Two
// articles with the same link are considered the same article regardless of
// title text, so the link is the identity used for deduplication.
type Article struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Query describes one engine invocation: a keyword, an inclusive YYYYMMDD
// date window, and an upper bound on how many articles to collect. Construct
// it with NewQuery so the invariants hold; a Query is never mutated after
// construction.
type Query struct {
	Keyword  string
	Start    string
	End      string
	MaxItems int
}

// NewQuery validates and builds a Query. The start and end strings go
// through ResolveDateRange, so either or both may be empty (they default to
// today). Fails on an empty keyword or a non-positive item cap.
func NewQuery(keyword, start, end string, maxItems int) (Query, error) {
	if keyword == "" {
		return Query{}, fmt.Errorf("keyword must not be empty")
	}
	if maxItems <= 0 {
		return Query{}, fmt.Errorf("max items must be positive, got %d", maxItems)
	}

	resolvedStart, resolvedEnd, err := ResolveDateRange(start, end)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Keyword:  keyword,
		Start:    resolvedStart,
		End:      resolvedEnd,
		MaxItems: maxItems,
	}, nil
}
