// ABOUTME: Water intake entry and daily summary models.
// ABOUTME: Summary totals are server-computed; the client never recomputes them.
package models

import "time"

// WaterIntakeEntry is a single logged drink.
type WaterIntakeEntry struct {
	ID         string
	AmountMl   int
	ConsumedAt time.Time
	Note       *string
}

// DailyWaterSummary aggregates water intake for one UTC calendar date.
// TotalMl is computed by the server and equals the sum of entry amounts;
// the client displays it as-is.
type DailyWaterSummary struct {
	Date    string // YYYY-MM-DD
	TotalMl int
	GoalMl  int
	Entries []WaterIntakeEntry
}

// EntriesTotal sums the entry amounts. It exists so tests can assert the
// server invariant TotalMl == EntriesTotal(); display code uses TotalMl.
func (s *DailyWaterSummary) EntriesTotal() int {
	total := 0
	for _, e := range s.Entries {
		total += e.AmountMl
	}
	return total
}
