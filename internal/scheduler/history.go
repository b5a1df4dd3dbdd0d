package scheduler

import "github.com/samber/lo"

type historyKey struct {
	faculty   string
	classroom string
}

// HistoryTracker is the cross-day ledger of which days each faculty member
// taught in each classroom. One day number is appended per successful
// assignment, so a day appears twice when two slots were taught. It lives
// for one generation run.
type HistoryTracker struct {
	entries map[historyKey][]int
}

// NewHistoryTracker creates an empty tracker.
func NewHistoryTracker() *HistoryTracker {
	return &HistoryTracker{entries: make(map[historyKey][]int)}
}

// Record appends day to the (faculty, classroom) history.
func (h *HistoryTracker) Record(faculty, classroom string, day int) {
	key := historyKey{faculty: faculty, classroom: classroom}
	h.entries[key] = append(h.entries[key], day)
}

// CountOnDay returns how many slots faculty taught in classroom on day.
func (h *HistoryTracker) CountOnDay(faculty, classroom string, day int) int {
	return lo.Count(h.entries[historyKey{faculty: faculty, classroom: classroom}], day)
}

// HadMultiSlotDayBefore reports whether any day strictly before day reached
// threshold slots for the (faculty, classroom) pair.
func (h *HistoryTracker) HadMultiSlotDayBefore(faculty, classroom string, day, threshold int) bool {
	perDay := lo.CountValuesBy(h.entries[historyKey{faculty: faculty, classroom: classroom}], func(d int) int { return d })
	for d, n := range perDay {
		if d < day && n >= threshold {
			return true
		}
	}
	return false
}

// TotalSlots returns every slot faculty has ever held in classroom during
// this run.
func (h *HistoryTracker) TotalSlots(faculty, classroom string) int {
	return len(h.entries[historyKey{faculty: faculty, classroom: classroom}])
}
