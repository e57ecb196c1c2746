package newssearch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// outcomeKind tags the result of one retrieval attempt.
type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeEmpty
	outcomeNetworkFailure
	outcomeParseFailure
)

// outcome is the result of one retrieval attempt against one source. Only
// outcomeSuccess carries records; the failure kinds carry the cause for
// logging.
type outcome struct {
	kind    outcomeKind
	records []Article
	err     error
}

// retrievalAttempt is one source in the fallback chain. The orchestrator
// runs attempts in order and stops at the first that succeeds with a
// non-empty, filtered result.
type retrievalAttempt struct {
	name string
	run  func(ctx context.Context, q Query) outcome
}

// SearchGoogle collects up to q.MaxItems articles from Google News. The
// structured feed is tried first because it is cheaper and more stable than
// scraping; the HTML search page is the last-resort path used when the feed
// is unreachable, unparseable, or yields nothing inside the date window.
// Every failure along the chain is soft: the worst case is an empty result,
// never an error.
func (e *Engine) SearchGoogle(ctx context.Context, q Query) []Article {
	log := e.queryLog("google", q)

	attempts := []retrievalAttempt{
		{name: "feed", run: e.googleFeedAttempt},
		{name: "html", run: e.googleHTMLAttempt},
	}

	for _, attempt := range attempts {
		result := attempt.run(ctx, q)
		switch result.kind {
		case outcomeSuccess:
			log.WithFields(logrus.Fields{"source": attempt.name, "count": len(result.records)}).Info("search complete")
			return result.records
		case outcomeEmpty:
			log.WithField("source", attempt.name).Info("source returned no articles in range, trying next")
		case outcomeNetworkFailure:
			log.WithError(result.err).WithField("source", attempt.name).Warn("source unreachable, trying next")
		case outcomeParseFailure:
			log.WithError(result.err).WithField("source", attempt.name).Warn("source unparseable, trying next")
		}
	}

	log.Info("all sources exhausted with no articles")
	return nil
}

// isoDate rewrites YYYYMMDD as YYYY-MM-DD.
func isoDate(s string) string {
	return s[:4] + "-" + s[4:6] + "-" + s[6:]
}

// googleFeedURL builds the news feed query. The feed's before: operator is
// exclusive, so the resolved end date is pushed forward one day to keep the
// window inclusive.
func (e *Engine) googleFeedURL(q Query) string {
	end, _ := time.Parse(dateLayout, q.End)
	exclusiveEnd := end.AddDate(0, 0, 1).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s after:%s before:%s", q.Keyword, isoDate(q.Start), exclusiveEnd))
	params.Set("hl", "ko")
	params.Set("gl", "KR")
	params.Set("ceid", "KR:ko")
	return e.cfg.Google.RSSURL + "?" + params.Encode()
}

// googleFeedAttempt fetches and parses the news feed, post-filters entries
// to the requested date window, and dedupes by cleaned link. The feed
// matches dates loosely, so the window filter is a correctness requirement,
// not an optimization.
func (e *Engine) googleFeedAttempt(ctx context.Context, q Query) outcome {
	feedURL := e.googleFeedURL(q)

	body, err := e.client.Get(ctx, feedURL, "")
	if err != nil {
		return outcome{kind: outcomeNetworkFailure, err: err}
	}

	entries, err := parseFeed(body)
	if err != nil {
		return outcome{kind: outcomeParseFailure, err: err}
	}

	seen := make(map[string]bool)
	var records []Article
	for _, entry := range entries {
		if !withinWindow(entry.PublishedAt, q.Start, q.End) {
			continue
		}

		link := CleanLink(entry.Link)
		if link == "" {
			// Keep the raw link rather than drop the entry: feed links are
			// occasionally wrapper forms the cleaner refuses but still
			// resolve in a browser.
			link = entry.Link
		}
		if seen[link] {
			continue
		}
		seen[link] = true

		records = append(records, Article{Title: entry.Title, Link: link})
		if len(records) >= q.MaxItems {
			break
		}
	}

	if len(records) == 0 {
		return outcome{kind: outcomeEmpty}
	}
	return outcome{kind: outcomeSuccess, records: records}
}

// googleHTMLURL builds the HTML news search URL with the backend's
// date-range syntax. The requested result count is capped at the backend's
// hard maximum.
func (e *Engine) googleHTMLURL(q Query) string {
	count := q.MaxItems
	if count > e.cfg.Google.HTMLMaxResults {
		count = e.cfg.Google.HTMLMaxResults
	}

	params := url.Values{}
	params.Set("q", q.Keyword)
	params.Set("tbm", "nws")
	params.Set("hl", "ko")
	params.Set("gl", "KR")
	params.Set("num", strconv.Itoa(count))
	params.Set("tbs", fmt.Sprintf("cdr:1,cd_min:%s,cd_max:%s", isoDate(q.Start), isoDate(q.End)))
	params.Set("gbv", "1")
	return e.cfg.Google.HTMLURL + "?" + params.Encode()
}

// googleHTMLAttempt scrapes the HTML news search page. Result links arrive
// as redirect wrappers, so every anchor goes through CleanLink, which also
// filters the map/support destinations the page mixes in.
func (e *Engine) googleHTMLAttempt(ctx context.Context, q Query) outcome {
	searchURL := e.googleHTMLURL(q)

	body, err := e.client.Get(ctx, searchURL, "")
	if err != nil {
		return outcome{kind: outcomeNetworkFailure, err: err}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return outcome{kind: outcomeParseFailure, err: fmt.Errorf("failed to parse HTML: %w", err)}
	}

	seen := make(map[string]bool)
	var records []Article
	doc.Find("a[href^='/url?'], a[href^='https://www.google.com/url?']").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := normalizeSpace(a.Text())
		if title == "" {
			return true
		}
		link := CleanLink(a.AttrOr("href", ""))
		if link == "" || seen[link] {
			return true
		}
		seen[link] = true
		records = append(records, Article{Title: title, Link: link})
		return len(records) < q.MaxItems
	})

	if len(records) == 0 {
		return outcome{kind: outcomeEmpty}
	}
	return outcome{kind: outcomeSuccess, records: records}
}
