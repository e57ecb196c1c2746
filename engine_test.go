package newssearch

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/dhkwon/newssearch/config"
)

// newTestEngine builds an engine pointed at stub backend URLs, with the
// politeness limiter opened wide so tests run fast and log output
// discarded.
func newTestEngine(naverURL, rssURL, htmlURL string) *Engine {
	cfg := config.Default()
	if naverURL != "" {
		cfg.Naver.BaseURL = naverURL
	}
	if rssURL != "" {
		cfg.Google.RSSURL = rssURL
	}
	if htmlURL != "" {
		cfg.Google.HTMLURL = htmlURL
	}
	cfg.Politeness.RequestsPerSecond = 10000
	cfg.Politeness.Burst = 1

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewEngine(cfg, log)
}

// mustQuery builds a Query directly for tests that need full control over
// the fields without running validation defaults.
func mustQuery(keyword, start, end string, maxItems int) Query {
	return Query{Keyword: keyword, Start: start, End: end, MaxItems: maxItems}
}
