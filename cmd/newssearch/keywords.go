package main

import (
	"errors"
	"fmt"
	"strings"
)

// splitKeywords splits a raw keyword string into logical keywords. Words
// are separated by whitespace, but a double-quoted phrase stays together as
// one keyword with its quotes removed, so `AI "Hong Gildong"` yields two
// keywords. An unterminated quote is an error rather than a guess.
func splitKeywords(input string) ([]string, error) {
	var keywords []string
	var current strings.Builder
	inQuotes := false
	hasToken := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n'):
			if hasToken {
				keywords = append(keywords, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}

	if inQuotes {
		return nil, errors.New("unterminated quote in keyword string")
	}
	if hasToken {
		keywords = append(keywords, current.String())
	}

	for i, keyword := range keywords {
		if keyword == "" {
			return nil, fmt.Errorf("keyword %d is empty", i+1)
		}
	}
	return keywords, nil
}
