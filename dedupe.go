package newssearch

// Dedupe collapses records sharing a link, keeping the first occurrence and
// preserving discovery order. Idempotent. Links are assumed already
// normalized; the same article behind two spellings of its URL will not be
// collapsed here.
func Dedupe(records []Article) []Article {
	seen := make(map[string]bool, len(records))
	out := make([]Article, 0, len(records))
	for _, record := range records {
		if seen[record.Link] {
			continue
		}
		seen[record.Link] = true
		out = append(out, record)
	}
	return out
}
