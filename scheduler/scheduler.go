// Package scheduler describes five-field cron expressions in plain English
// and carries the run-window heuristics for the automation trigger.
//
// It is a describer, not a scheduler: NextRunTime and ShouldRunNow do not
// evaluate the cron expression. Actual triggering is delegated to an
// external invoker hitting the cron endpoint.
package scheduler

import (
	"strconv"
	"strings"
	"time"

	"autotube/config"
)

// Description is the human-readable report for a cron expression.
type Description struct {
	Valid bool   `json:"valid"`
	Text  string `json:"description"`
}

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Describe converts a five-field cron string into an English sentence.
// Anything with exactly five fields is reported valid; field values are
// not range-checked ("99 25 * * *" passes).
func Describe(cron string) Description {
	parts := strings.Fields(strings.TrimSpace(cron))
	if len(parts) != 5 {
		return Description{Valid: false, Text: "Invalid cron format"}
	}

	minute, hour, dayOfWeek := parts[0], parts[1], parts[4]

	var b strings.Builder
	b.WriteString("Runs ")

	if dayOfWeek != "*" {
		tokens := strings.Split(dayOfWeek, ",")
		names := make([]string, len(tokens))
		for i, tok := range tokens {
			names[i] = dayName(tok)
		}
		b.WriteString("every " + strings.Join(names, ", ") + " ")
	} else {
		b.WriteString("daily ")
	}

	b.WriteString("at " + pad2(hour) + ":" + pad2(minute))
	return Description{Valid: true, Text: b.String()}
}

// dayName maps a numeric day token through the Sunday-first name table.
// Non-numeric or out-of-range tokens pass through unchanged.
func dayName(token string) string {
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 || n >= len(dayNames) {
		return token
	}
	return dayNames[n]
}

// pad2 left-zero-pads a raw token to width 2. Lexical padding only:
// "100" stays "100", no numeric normalization or clamping.
func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

// NextRunTime reports the next automation run. The cron expression is not
// evaluated; the answer is always tomorrow at 10:00 local time.
// TODO: evaluate the expression once a real cron parser is adopted.
func NextRunTime(cron string) time.Time {
	tomorrow := time.Now().AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, tomorrow.Location())
}

// ShouldRunNow reports whether an automation run is due. A missing prior
// run always qualifies; otherwise at least MinRunInterval must have
// elapsed. The cron expression is ignored.
func ShouldRunNow(lastRun *time.Time, cron string) bool {
	if lastRun == nil {
		return true
	}
	return time.Since(*lastRun) >= config.MinRunInterval
}

// optimalSchedules are cron presets derived from typical YouTube
// engagement windows.
var optimalSchedules = []string{
	"0 14 * * 1,2,3", // Mon-Wed at 2 PM
	"0 12 * * 4,5",   // Thu-Fri at 12 PM
	"0 10 * * 0,6",   // Sat-Sun at 10 AM
}

// OptimalPostingSchedule returns a recommended posting schedule.
func OptimalPostingSchedule() string {
	return optimalSchedules[0]
}
