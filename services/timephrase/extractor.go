// File: tailortalk/services/timephrase/extractor.go
package timephrase

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Day tokens: casual relatives ("today", "tomorrow"), "next <word>", or a
// literal weekday name. Time tokens: 1-2 digit hour, optional minutes, am/pm.
var (
	dayPattern  = regexp.MustCompile(`(?i)(today|tomorrow|next\s+\w+|\bmonday\b|\btuesday\b|\bwednesday\b|\bthursday\b|\bfriday\b|\bsaturday\b|\bsunday\b)`)
	timePattern = regexp.MustCompile(`(?i)\b\d{1,2}(:\d{2})?\s*(am|pm)\b`)
)

// ResolveError reports a phrase that did not resolve to a date/time. Callers
// treat this as user-correctable, not fatal.
type ResolveError struct {
	Phrase string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("could not resolve a date/time from %q", e.Phrase)
}

// Extractor pulls a day token and a time token out of free text and resolves
// the composed phrase to an absolute timestamp anchored at Now.
type Extractor struct {
	Resolver *Resolver
	Now      func() time.Time
}

// NewExtractor returns an extractor anchored to the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{Resolver: NewResolver(), Now: time.Now}
}

// CleanInput strips curly and straight quotes and trims whitespace.
func CleanInput(raw string) string {
	replacer := strings.NewReplacer("“", "", "”", "", `"`, "")
	return strings.TrimSpace(replacer.Replace(raw))
}

// ComposePhrase reduces free text to a canonical date/time phrase. With both
// tokens present the result is "<day> at <time>"; with one token, that token
// alone; with neither, the full text passes through as a last resort.
func ComposePhrase(text string) string {
	day := dayPattern.FindString(text)
	clock := timePattern.FindString(text)

	switch {
	case day != "" && clock != "":
		return fmt.Sprintf("%s at %s", day, clock)
	case clock != "":
		return clock
	case day != "":
		return day
	default:
		return text
	}
}

// Extract returns the absolute timestamp a free-text utterance refers to.
// Resolution failure yields a *ResolveError carrying the attempted phrase.
func (e *Extractor) Extract(text string) (time.Time, error) {
	cleaned := CleanInput(text)
	phrase := ComposePhrase(cleaned)

	dt, ok := e.Resolver.Resolve(phrase, e.Now())
	if !ok {
		return time.Time{}, &ResolveError{Phrase: phrase}
	}
	return dt, nil
}
