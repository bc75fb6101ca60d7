package schedule

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateTimeParser resolves a natural-language date/time phrase relative to a
// reference instant, preferring future interpretations. Implementations
// report false when the phrase carries no usable date or time, which is not
// an error at resolution time. The parser is the only heuristic piece of the
// scheduling core and is swappable in tests.
type DateTimeParser interface {
	Parse(text string, ref time.Time) (time.Time, bool)
}

// WhenParser parses phrases like "Friday at 3pm" or "tomorrow afternoon"
// using the when rule engine.
type WhenParser struct {
	w *when.Parser
}

func NewWhenParser() *WhenParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenParser{w: w}
}

func (p *WhenParser) Parse(text string, ref time.Time) (time.Time, bool) {
	r, err := p.w.Parse(text, ref)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	return r.Time, true
}
