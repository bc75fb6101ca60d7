package schedule

import (
	"regexp"
	"time"
)

// lookback is subtracted from a parsed preference that carries a time of
// day, so slots shortly before the caller's stated time still surface.
const lookback = 2 * time.Hour

// relativeWords would otherwise anchor parsing away from the supplied "now";
// they are stripped so "next Friday" resolves relative to the caller's call.
var relativeWords = regexp.MustCompile(`(?i)\b(next|this|coming)\b`)

// ResolveAnchor turns a free-form date/time preference into the concrete
// instant the slot search starts from. An absent or unparseable phrase falls
// back to tomorrow at midnight, searching a full day ahead instead of
// erroring. The result is always in loc.
func ResolveAnchor(parser DateTimeParser, preference string, now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)

	if preference != "" {
		cleaned := relativeWords.ReplaceAllString(preference, "")
		if parsed, ok := parser.Parse(cleaned, now); ok {
			parsed = parsed.In(loc)
			// The lookback is skipped at exact midnight: a date-only phrase
			// must not spill the search into the previous day.
			if !isMidnight(parsed) {
				parsed = parsed.Add(-lookback)
			}
			return parsed
		}
	}

	tomorrow := now.AddDate(0, 0, 1)
	y, m, d := tomorrow.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
