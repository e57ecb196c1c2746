package newssearch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// dottedDate rewrites YYYYMMDD as YYYY.MM.DD, the form the Naver search
// page expects in its ds/de parameters.
func dottedDate(s string) string {
	return s[:4] + "." + s[4:6] + "." + s[6:]
}

// naverSearchURL builds the search URL for one result page. offset is
// 1-based: page p starts at p*pageSize+1.
func (e *Engine) naverSearchURL(q Query, offset int) string {
	params := url.Values{}
	params.Set("where", "news")
	params.Set("sm", "tab_opt")
	params.Set("query", q.Keyword)
	params.Set("start", strconv.Itoa(offset))
	params.Set("nso", fmt.Sprintf("so:r,p:from%sto%s,a:all", q.Start, q.End))
	params.Set("pd", "3")
	params.Set("ds", dottedDate(q.Start))
	params.Set("de", dottedDate(q.End))
	return e.cfg.Naver.BaseURL + "?" + params.Encode()
}

// SearchNaver collects up to q.MaxItems articles from the paginated Naver
// news search. Pages are fetched in order with a politeness wait between
// requests; the loop stops early on the first empty page or on a network
// failure, returning whatever was collected so far -- a degraded fetch is
// partial results, never an error. Records come back in fetch order and are
// not deduplicated here.
func (e *Engine) SearchNaver(ctx context.Context, q Query) []Article {
	log := e.queryLog("naver", q)

	pageSize := e.cfg.Naver.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	pages := (q.MaxItems + pageSize - 1) / pageSize

	var collected []Article
	for page := 0; page < pages; page++ {
		// The limiter starts with a full bucket, so this only delays pages
		// after the first and never sleeps past the last page.
		if err := e.limiter.Wait(ctx); err != nil {
			log.WithError(err).Warn("politeness wait interrupted, stopping")
			return collected
		}

		pageURL := e.naverSearchURL(q, page*pageSize+1)
		body, err := e.client.Get(ctx, pageURL, "")
		if err != nil {
			log.WithError(err).WithField("url", pageURL).Warn("search request failed, returning partial results")
			return collected
		}

		records, err := parseSearchResults(body)
		if err != nil {
			log.WithError(err).WithField("url", pageURL).Warn("result page unparseable, returning partial results")
			return collected
		}
		if len(records) == 0 {
			// An empty page means the result set is exhausted; later pages
			// are assumed empty too.
			log.WithField("page", page).Debug("empty result page, stopping")
			return collected
		}

		for _, record := range records {
			collected = append(collected, record)
			if len(collected) >= q.MaxItems {
				log.WithField("count", len(collected)).Info("item cap reached")
				return collected
			}
		}
	}
	log.WithField("count", len(collected)).Info("search complete")
	return collected
}
