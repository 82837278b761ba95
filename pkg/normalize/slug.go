package normalize

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reQuotes   = regexp.MustCompile("['\"‘’“”]")
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

	slugPipeline = Pipeline{
		trimAndLower,
		stripQuotes,
		collapseToHyphens,
		trimHyphens,
	}
)

func trimAndLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func stripQuotes(s string) string {
	return reQuotes.ReplaceAllString(s, "")
}

func collapseToHyphens(s string) string {
	return reNonAlnum.ReplaceAllString(s, "-")
}

func trimHyphens(s string) string {
	return strings.Trim(s, "-")
}

// Slug derives a URL-safe identifier from a display title. An empty title
// yields an empty slug; callers treat that as a validation failure.
func Slug(title string) string {
	return slugPipeline.Apply(title)
}
