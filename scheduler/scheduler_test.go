package scheduler

import (
	"strings"
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		name      string
		cron      string
		wantValid bool
		wantText  string
	}{
		{"daily at ten", "0 10 * * *", true, "Runs daily at 10:00"},
		{"weekday afternoons", "0 14 * * 1,3", true, "Runs every Monday, Wednesday at 14:00"},
		{"weekend mornings", "30 9 * * 0,6", true, "Runs every Sunday, Saturday at 09:30"},
		{"too few fields", "0 10 * *", false, "Invalid cron format"},
		{"too many fields", "0 10 * * * *", false, "Invalid cron format"},
		{"empty", "", false, "Invalid cron format"},
		{"whitespace only", "   ", false, "Invalid cron format"},
		// No range validation: five fields is enough
		{"out of range fields", "99 25 * * *", true, "Runs daily at 25:99"},
		// Lexical padding only: wide tokens are not clamped
		{"wide hour token", "0 100 * * *", true, "Runs daily at 100:00"},
		// Out-of-range day tokens pass through unmapped
		{"bad day token", "0 10 * * 9", true, "Runs every 9 at 10:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Describe(c.cron)
			if got.Valid != c.wantValid {
				t.Fatalf("Describe(%q).Valid = %v; want %v", c.cron, got.Valid, c.wantValid)
			}
			if got.Text != c.wantText {
				t.Fatalf("Describe(%q).Text = %q; want %q", c.cron, got.Text, c.wantText)
			}
		})
	}
}

func TestDescribeExtraWhitespace(t *testing.T) {
	got := Describe("  0   10  *  *  *  ")
	if !got.Valid {
		t.Fatalf("expected whitespace-separated fields to parse, got %+v", got)
	}
	if !strings.Contains(got.Text, "daily at 10:00") {
		t.Fatalf("unexpected description: %q", got.Text)
	}
}

func TestNextRunTime(t *testing.T) {
	// The cron expression is deliberately ignored; always tomorrow 10:00.
	next := NextRunTime("30 22 * * 5")

	tomorrow := time.Now().AddDate(0, 0, 1)
	if next.Year() != tomorrow.Year() || next.Month() != tomorrow.Month() || next.Day() != tomorrow.Day() {
		t.Fatalf("NextRunTime = %v; want tomorrow's date", next)
	}
	if next.Hour() != 10 || next.Minute() != 0 || next.Second() != 0 {
		t.Fatalf("NextRunTime = %v; want 10:00:00", next)
	}
}

func TestShouldRunNow(t *testing.T) {
	recent := time.Now().Add(-1 * time.Hour)
	stale := time.Now().Add(-24 * time.Hour)

	cases := []struct {
		name    string
		lastRun *time.Time
		want    bool
	}{
		{"never ran", nil, true},
		{"ran an hour ago", &recent, false},
		{"ran a day ago", &stale, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ShouldRunNow(c.lastRun, "0 10 * * *"); got != c.want {
				t.Fatalf("ShouldRunNow(%v) = %v; want %v", c.lastRun, got, c.want)
			}
		})
	}
}

func TestOptimalPostingSchedule(t *testing.T) {
	got := OptimalPostingSchedule()
	if Describe(got).Valid != true {
		t.Fatalf("OptimalPostingSchedule returned an invalid expression: %q", got)
	}
	if got != "0 14 * * 1,2,3" {
		t.Fatalf("OptimalPostingSchedule = %q; want the Mon-Wed preset", got)
	}
}
