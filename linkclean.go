package newssearch

import (
	"net/url"
	"strings"
)

const (
	googleBase     = "https://www.google.com"
	googleNewsBase = "https://news.google.com"
)

// isRedirectWrapper reports whether link is one of Google's redirect
// wrapper URLs, where the true destination hides in the query string.
func isRedirectWrapper(link string) bool {
	return strings.HasPrefix(link, "/url?") || strings.HasPrefix(link, googleBase+"/url?")
}

// isArticleLink filters out destinations that can never be articles: map
// services and help/support pages that the search backend mixes into its
// result markup.
func isArticleLink(link string) bool {
	if strings.HasPrefix(link, "https://maps.google.com") {
		return false
	}
	if strings.Contains(link, "support.google.com") {
		return false
	}
	return true
}

// CleanLink normalizes a raw link from Google result markup into the true
// article URL. Redirect wrappers give up the destination embedded in their
// q (or url) parameter; absolute links pass through untouched; relative
// links resolve against the news frontend. Returns "" for links that are
// not HTTP(S) after normalization or that point at known non-article
// destinations. Idempotent on already-clean absolute article links.
func CleanLink(raw string) string {
	if raw == "" {
		return ""
	}

	link := raw
	switch {
	case isRedirectWrapper(link):
		parsed, err := url.Parse(link)
		if err != nil {
			return ""
		}
		query := parsed.Query()
		target := query.Get("q")
		if target == "" {
			target = query.Get("url")
		}
		if target != "" {
			link = target
		} else {
			link = resolveAgainst(googleBase, link)
		}
	case isAbsoluteHTTP(link):
		// Already a destination URL.
	case strings.Contains(link, "://"):
		// Non-HTTP scheme: never an article.
		return ""
	default:
		link = resolveAgainst(googleNewsBase, link)
	}

	if !isAbsoluteHTTP(link) || !isArticleLink(link) {
		return ""
	}
	return link
}

// resolveAgainst resolves ref against base, returning "" when ref cannot be
// parsed as a URL reference.
func resolveAgainst(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}
