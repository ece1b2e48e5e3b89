package timefmt

import (
	"testing"
	"time"
)

func TestNormalizeOffset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"+0800", "+08:00"},
		{"-0530", "-05:30"},
		{"+08:00", "+08:00"},
		{"bogus", "bogus"},
		{"", ""},
		{"+08000", "+08000"},
		{"+08a0", "+08a0"},
	}
	for _, c := range cases {
		if got := NormalizeOffset(c.in); got != c.want {
			t.Errorf("NormalizeOffset(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatRendersFieldsInOffset(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := Format(instant, "+08:00"); got != "2024-01-01T20:00:00+08:00" {
		t.Fatalf("Format +08:00 = %q", got)
	}
	if got := Format(instant, "-05:30"); got != "2024-01-01T06:30:00-05:30" {
		t.Fatalf("Format -05:30 = %q", got)
	}
}

func TestFormatLenientOnBadOffset(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	// Fields fall back to UTC, the raw offset is still appended.
	if got := Format(instant, "bogus"); got != "2024-01-01T12:00:00bogus" {
		t.Fatalf("Format bogus offset = %q", got)
	}
}

func TestStampComposition(t *testing.T) {
	t.Parallel()

	s := NewStamp("2024-01-01", "10:00", "+08:00")
	if got := s.String(); got != "2024-01-01T10:00+08:00" {
		t.Fatalf("String = %q", got)
	}

	if got := NewStamp("", "10:00", "+08:00").String(); got != "" {
		t.Fatalf("missing day should compose empty, got %q", got)
	}
	if got := NewStamp("2024-01-01", "", "+08:00").String(); got != "" {
		t.Fatalf("missing time should compose empty, got %q", got)
	}
}

func TestStampInstant(t *testing.T) {
	t.Parallel()

	s := NewStamp("2024-01-01", "10:00", "+08:00")
	got, ok := s.Instant()
	if !ok {
		t.Fatal("expected stamp to parse")
	}
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.FixedZone("", 8*3600))
	if !got.Equal(want) {
		t.Fatalf("Instant = %v, want %v", got, want)
	}

	withSecs := NewStamp("2024-01-01", "10:00:30", "+08:00")
	if _, ok := withSecs.Instant(); !ok {
		t.Fatal("expected stamp with seconds to parse")
	}

	if _, ok := NewStamp("", "", "+08:00").Instant(); ok {
		t.Fatal("empty stamp must not parse")
	}
	if _, ok := ParseStamp("not-a-date"); ok {
		t.Fatal("garbage must not parse")
	}
}

func TestMidnight(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+08:00", 8*3600)
	now := time.Date(2024, 3, 15, 17, 42, 9, 120, loc)
	got := Midnight(now)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) || got.Location() != loc {
		t.Fatalf("Midnight = %v, want %v", got, want)
	}
}
