package checkins

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Week identifies an ISO-8601 week, e.g. "2025-W07".
type Week struct {
	Year   int
	Number int
}

// ParseWeek parses a "YYYY-W##" week string.
func ParseWeek(s string) (Week, error) {
	parts := strings.SplitN(s, "-W", 2)
	if len(parts) != 2 {
		return Week{}, fmt.Errorf("invalid week format %q, expected YYYY-W##", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Week{}, fmt.Errorf("invalid week year in %q: %w", s, err)
	}

	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return Week{}, fmt.Errorf("invalid week number in %q: %w", s, err)
	}
	if number < 1 || number > 53 {
		return Week{}, fmt.Errorf("week number %d out of range", number)
	}

	return Week{Year: year, Number: number}, nil
}

// String renders the week back to its "YYYY-W##" form.
func (w Week) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Number)
}

// Start returns the Monday the week begins on. ISO week 1 is the week
// containing January 4th, so week 1's Monday is Jan 4 rolled back to Monday.
func (w Week) Start() time.Time {
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	daysSinceMonday := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -daysSinceMonday)
	return week1Monday.AddDate(0, 0, (w.Number-1)*7)
}

// Dates returns the seven dates of the week in DateLayout form, Monday first.
func (w Week) Dates() []string {
	start := w.Start()
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}

// WeekData maps check-in dates to their records for one patient's week.
// Dates without a check-in are absent.
type WeekData map[string]*CheckIn

// Summary aggregates a week of check-ins.
type Summary struct {
	CompletedDays int
	TotalDays     int
	AvgEmotional  float64
	AvgMedication float64
	AvgActivity   float64
}

// CompletionPercent returns the completion rate as a percentage.
func (s Summary) CompletionPercent() float64 {
	if s.TotalDays == 0 {
		return 0
	}
	return float64(s.CompletedDays) / float64(s.TotalDays) * 100
}

// Summarize computes weekly statistics. The medication average excludes
// "Not Applicable" days, matching how the emailed summary reads.
func Summarize(data WeekData) Summary {
	summary := Summary{
		CompletedDays: len(data),
		TotalDays:     7,
	}

	if len(data) == 0 {
		return summary
	}

	var emotionalTotal, activityTotal int
	var medicationTotal, medicationDays int
	for _, checkin := range data {
		emotionalTotal += checkin.Emotional.Value
		activityTotal += checkin.Activity.Value
		if checkin.Medication.Value > MedicationNotApplicable {
			medicationTotal += checkin.Medication.Value
			medicationDays++
		}
	}

	summary.AvgEmotional = float64(emotionalTotal) / float64(len(data))
	summary.AvgActivity = float64(activityTotal) / float64(len(data))
	if medicationDays > 0 {
		summary.AvgMedication = float64(medicationTotal) / float64(medicationDays)
	}

	return summary
}
