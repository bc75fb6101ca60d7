package schedule

import (
	"strings"
	"testing"
	"time"
)

// stubParser returns a canned result and records the text it was given.
type stubParser struct {
	result  time.Time
	ok      bool
	gotText string
}

func (s *stubParser) Parse(text string, ref time.Time) (time.Time, bool) {
	s.gotText = text
	return s.result, s.ok
}

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestResolveAnchor_FallbackTomorrowMidnight(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2026, 3, 10, 16, 45, 12, 0, loc)

	for _, pref := range []string{"", "whenever works honestly"} {
		got := ResolveAnchor(&stubParser{ok: false}, pref, now, loc)
		want := time.Date(2026, 3, 11, 0, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("preference %q: expected %s, got %s", pref, want, got)
		}
	}
}

func TestResolveAnchor_LookbackApplied(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	parsed := time.Date(2026, 3, 13, 15, 0, 0, 0, loc)

	got := ResolveAnchor(&stubParser{result: parsed, ok: true}, "Friday around 3pm", now, loc)
	want := parsed.Add(-2 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestResolveAnchor_MidnightSkipsLookback(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	parsed := time.Date(2026, 3, 13, 0, 0, 0, 0, loc)

	got := ResolveAnchor(&stubParser{result: parsed, ok: true}, "Friday", now, loc)
	if !got.Equal(parsed) {
		t.Fatalf("midnight parse must pass through unchanged, got %s", got)
	}
}

func TestResolveAnchor_StripsRelativeWords(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	p := &stubParser{result: now.AddDate(0, 0, 3), ok: true}

	ResolveAnchor(p, "Next Friday, or maybe this coming Saturday", now, loc)

	lowered := strings.ToLower(p.gotText)
	for _, word := range []string{"next", "this", "coming"} {
		if strings.Contains(lowered, word) {
			t.Errorf("parser input still contains %q: %q", word, p.gotText)
		}
	}
	if !strings.Contains(lowered, "friday") || !strings.Contains(lowered, "saturday") {
		t.Errorf("stripping removed too much: %q", p.gotText)
	}
}

func TestResolveAnchor_LocalizesParsedResult(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	// Parser hands back the same instant expressed in UTC.
	parsed := time.Date(2026, 3, 12, 21, 0, 0, 0, time.UTC)

	got := ResolveAnchor(&stubParser{result: parsed, ok: true}, "Thursday 3pm", now, loc)
	if got.Location() != loc {
		t.Fatalf("expected result in %v, got %v", loc, got.Location())
	}
	if !got.Equal(parsed.Add(-2 * time.Hour)) {
		t.Fatalf("conversion must not change the instant")
	}
}

func TestWhenParser_TomorrowAtFive(t *testing.T) {
	loc := chicago(t)
	ref := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)

	got, ok := NewWhenParser().Parse("tomorrow at 5pm", ref)
	if !ok {
		t.Fatal("expected phrase to parse")
	}
	want := time.Date(2026, 3, 11, 17, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestWhenParser_RejectsNoise(t *testing.T) {
	ref := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if _, ok := NewWhenParser().Parse("the blue house with the garage", ref); ok {
		t.Fatal("expected parse to fail for a non-temporal phrase")
	}
}
