package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2015-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date %v", got)
	}
	if _, err := ParseDate("02/01/2015"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ParseDateDefault("", def); !got.Equal(def) {
		t.Fatalf("expected default")
	}
	if got := ParseDateDefault("not-a-date", def); !got.Equal(def) {
		t.Fatalf("expected default for invalid input")
	}
}

func TestDateSequenceContiguous(t *testing.T) {
	start := time.Date(2024, 2, 27, 9, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 16, 0, 0, 0, time.UTC)
	seq := DateSequence(start, end)
	if len(seq) != 5 {
		t.Fatalf("expected 5 days, got %d", len(seq))
	}
	for i := 1; i < len(seq); i++ {
		if DaysBetween(seq[i-1], seq[i]) != 1 {
			t.Fatalf("sequence not contiguous at %d: %v -> %v", i, seq[i-1], seq[i])
		}
	}
	if seq[0] != Day(start) || seq[len(seq)-1] != Day(end) {
		t.Fatalf("unexpected endpoints %v %v", seq[0], seq[len(seq)-1])
	}
}

func TestDateSequenceEmpty(t *testing.T) {
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if seq := DateSequence(end.AddDate(0, 0, 1), end); seq != nil {
		t.Fatalf("expected nil sequence, got %v", seq)
	}
}

func TestFormatMDY(t *testing.T) {
	d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := FormatMDY(d); got != "03/09/2024" {
		t.Fatalf("unexpected format %q", got)
	}
}
