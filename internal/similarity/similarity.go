// Package similarity flags existing issues whose titles look like a new one.
//
// Titles are compared as lower-cased whitespace tokens. A candidate token
// matches a record when it is a substring of one of the record's tokens or
// one of the record's tokens is a substring of it. The score is the share of
// candidate tokens that matched, measured against the longer of the two
// token lists, as a percentage.
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

const (
	// DefaultThreshold is the score a record must exceed to be reported.
	DefaultThreshold = 60.0

	// DefaultMinTitleLength is the trimmed rune count below which Check
	// skips the comparison entirely.
	DefaultMinTitleLength = 3
)

// Options tunes the engine
type Options struct {
	Threshold      float64
	MinTitleLength int
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		Threshold:      DefaultThreshold,
		MinTitleLength: DefaultMinTitleLength,
	}
}

// Engine evaluates candidate titles against existing issues.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// New creates an engine with the given options. Values are used as given;
// callers wanting defaults start from DefaultOptions.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Options returns the options the engine was built with
func (e *Engine) Options() Options {
	return e.opts
}

// FindSimilar returns the existing issues whose score against candidate
// is strictly greater than the threshold, in input order.
func (e *Engine) FindSimilar(candidate string, existing []models.Issue) []models.Issue {
	matches := e.Matches(candidate, existing)
	if len(matches) == 0 {
		return nil
	}

	issues := make([]models.Issue, len(matches))
	for i, m := range matches {
		issues[i] = m.Issue
	}
	return issues
}

// Matches is FindSimilar with each issue's score attached
func (e *Engine) Matches(candidate string, existing []models.Issue) []models.Match {
	candidateTokens := Tokenize(candidate)
	if len(candidateTokens) == 0 {
		return nil
	}

	var matches []models.Match
	for _, issue := range existing {
		score := Score(candidateTokens, Tokenize(issue.Title))
		if score > e.opts.Threshold {
			matches = append(matches, models.Match{Issue: issue, Score: score})
		}
	}
	return matches
}

// Check applies the minimum title length convention before matching.
// A trimmed candidate shorter than MinTitleLength runes yields no matches.
func (e *Engine) Check(candidate string, existing []models.Issue) []models.Match {
	if !e.Eligible(candidate) {
		return nil
	}
	return e.Matches(candidate, existing)
}

// Eligible reports whether candidate is long enough to be checked
func (e *Engine) Eligible(candidate string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(candidate)) >= e.opts.MinTitleLength
}

// FindSimilar runs a default engine
func FindSimilar(candidate string, existing []models.Issue) []models.Issue {
	return New(DefaultOptions()).FindSimilar(candidate, existing)
}

// Tokenize lower-cases s and splits it on runs of whitespace.
// Punctuation is kept and diacritics are not folded.
func Tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// Score returns the percentage of candidate tokens that matched a record
// token, divided by the longer of the two token lists. Each candidate token
// contributes at most one match however many record tokens it overlaps.
func Score(candidateTokens, recordTokens []string) float64 {
	denominator := max(len(candidateTokens), len(recordTokens))
	if denominator == 0 || len(recordTokens) == 0 {
		return 0
	}

	matchCount := 0
	for _, word := range candidateTokens {
		if matchesAny(word, recordTokens) {
			matchCount++
		}
	}

	return float64(matchCount) / float64(denominator) * 100
}

// matchesAny checks bidirectional substring containment against each token
func matchesAny(word string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(t, word) || strings.Contains(word, t) {
			return true
		}
	}
	return false
}
