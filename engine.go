package newssearch

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/dhkwon/newssearch/config"
)

// Engine runs keyword news searches against the configured backends. One
// engine may serve many queries, but each query executes synchronously and
// keeps all of its working state (seen links, collected records) on the
// stack of the call -- nothing crosses invocations.
type Engine struct {
	cfg     *config.Config
	client  *HTTPClient
	limiter *rate.Limiter
	log     *logrus.Logger
}

// NewEngine builds an engine from configuration. A nil logger gets a
// default logrus logger at the configured level.
func NewEngine(cfg *config.Config, log *logrus.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logrus.New()
		if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(level)
		}
	}

	headers := map[string]string{
		"User-Agent":      cfg.HTTP.UserAgent,
		"Accept-Language": cfg.HTTP.AcceptLanguage,
	}
	timeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second

	return &Engine{
		cfg:     cfg,
		client:  NewHTTPClient(headers, timeout),
		limiter: rate.NewLimiter(rate.Limit(cfg.Politeness.RequestsPerSecond), cfg.Politeness.Burst),
		log:     log,
	}
}

// queryLog returns a log entry carrying a fresh invocation id plus the
// query fields, so interleaved log lines from different searches stay
// distinguishable.
func (e *Engine) queryLog(backend string, q Query) *logrus.Entry {
	return e.log.WithFields(logrus.Fields{
		"invocation": uuid.New().String()[:8],
		"backend":    backend,
		"keyword":    q.Keyword,
		"range":      q.Start + "-" + q.End,
	})
}
