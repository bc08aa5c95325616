// File: tailortalk/services/timephrase/resolver.go
package timephrase

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Resolver converts relative date/time phrases ("tomorrow at 2pm", "next
// friday") into absolute timestamps, preferring future dates.
type Resolver struct {
	parser *when.Parser
}

// NewResolver builds a parser with the English and common rule sets.
func NewResolver() *Resolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Resolver{parser: w}
}

// Resolve parses a phrase relative to base. A bare clock time that already
// passed today rolls forward a day, so results never land in the past.
// The boolean is false when the phrase contains nothing resolvable.
func (r *Resolver) Resolve(phrase string, base time.Time) (time.Time, bool) {
	result, err := r.parser.Parse(phrase, base)
	if err != nil || result == nil {
		return time.Time{}, false
	}

	dt := result.Time
	if dt.Before(base) {
		dt = dt.Add(24 * time.Hour)
	}
	return dt, true
}
