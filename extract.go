package newssearch

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractStrategy is one heuristic for pulling (title, link) pairs out of a
// search result page. The backend has shipped several concurrent markup
// layouts over time; each layout gets its own strategy and new ones are
// added by appending to searchResultStrategies, not by editing existing
// strategies.
type extractStrategy interface {
	name() string
	extract(doc *goquery.Document) []Article
}

// classicStrategy handles the long-standing layout where each result title
// is an anchor tagged news_tit. The title attribute is preferred over the
// anchor text because the attribute carries the untruncated headline.
type classicStrategy struct{}

func (classicStrategy) name() string { return "classic" }

func (classicStrategy) extract(doc *goquery.Document) []Article {
	var records []Article
	doc.Find("a.news_tit").Each(func(_ int, a *goquery.Selection) {
		title := a.AttrOr("title", "")
		if title == "" {
			title = strings.TrimSpace(a.Text())
		}
		link := a.AttrOr("href", "")
		if title != "" && link != "" {
			records = append(records, Article{Title: title, Link: link})
		}
	})
	return records
}

// headlineStrategy handles the newer component layout where the headline is
// a styled span nested somewhere inside its anchor. The link comes from the
// nearest enclosing anchor ancestor.
type headlineStrategy struct{}

func (headlineStrategy) name() string { return "headline" }

func (headlineStrategy) extract(doc *goquery.Document) []Article {
	var records []Article
	doc.Find("span.sds-comps-text-type-headline1").Each(func(_ int, span *goquery.Selection) {
		title := strings.TrimSpace(span.Text())
		a := span.ParentsFiltered("a").First()
		if a.Length() == 0 {
			return
		}
		link := a.AttrOr("href", "")
		if title != "" && link != "" {
			records = append(records, Article{Title: title, Link: link})
		}
	})
	return records
}

// searchResultStrategies is the ordered strategy set applied to every
// fetched result page. Order matters: output is the concatenation of each
// strategy's records in this order.
var searchResultStrategies = []extractStrategy{
	classicStrategy{},
	headlineStrategy{},
}

// normalizeSpace collapses runs of whitespace, including newlines from
// nested markup, into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isAbsoluteHTTP reports whether link is an absolute HTTP or HTTPS URL.
func isAbsoluteHTTP(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}

// parseSearchResults runs every extraction strategy over one page of result
// markup and concatenates their records, dropping anything whose link is not
// an absolute HTTP(S) URL. Duplicates are left in place; deduplication
// belongs to the caller, which sees records from many pages.
func parseSearchResults(html []byte) ([]Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var records []Article
	for _, strategy := range searchResultStrategies {
		for _, record := range strategy.extract(doc) {
			if isAbsoluteHTTP(record.Link) {
				records = append(records, record)
			}
		}
	}
	return records, nil
}
