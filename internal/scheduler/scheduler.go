package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

// FillDay assigns faculty to as many of today's slots as possible in a
// single deterministic pass. Slots are visited in classroom registration
// order, ascending timeslot within each room; candidates are tried in the
// order they were obligated to the room and the first valid one wins.
// Returns the number of new assignments.
func FillDay(roster *model.Roster, conflicts *ConflictIndex, history *HistoryTracker, day int, cfg *Config, log zerolog.Logger) int {
	placed := 0
	for _, room := range roster.Classrooms() {
		for _, slot := range room.Slots() {
			for _, name := range room.FacultyOrder() {
				if !isValidAssignment(roster, conflicts, history, name, room, slot, day, cfg) {
					continue
				}
				assign(roster, conflicts, history, name, room, slot, day)
				log.Debug().
					Int("day", day).
					Str("classroom", room.Name).
					Int("timeslot", slot.Timeslot).
					Str("faculty", name).
					Msg("slot assigned")
				placed++
				break
			}
		}
	}
	return placed
}

// isValidAssignment is the validity predicate: every rule must hold for the
// slot to be assignable to the named faculty.
func isValidAssignment(roster *model.Roster, conflicts *ConflictIndex, history *HistoryTracker, faculty string, room *model.Classroom, slot *model.Slot, day int, cfg *Config) bool {
	ob, ok := roster.Obligation(faculty, room.Name)
	if !ok || ob.Remaining <= 0 {
		return false
	}
	if conflicts.IsConflicting(room.Name, slot.Timeslot, faculty) {
		return false
	}
	taughtToday := history.CountOnDay(faculty, room.Name, day)
	if taughtToday >= cfg.MaxSlotsPerFacultyPerDay {
		return false
	}
	// A faculty member that already had a heavy day may not pick up a
	// second slot on a later day.
	if taughtToday == 1 && history.HadMultiSlotDayBefore(faculty, room.Name, day, cfg.HeavyDayThreshold) {
		return false
	}
	if cfg.DistinctFromPreviousSlotInRoom && slot.Timeslot > 1 {
		if prev := room.Slot(slot.Timeslot - 1); prev != nil && prev.Faculty == faculty {
			return false
		}
	}
	if cfg.MaxTotalSlotsPerFacultyPerRoom > 0 &&
		history.TotalSlots(faculty, room.Name) >= cfg.MaxTotalSlotsPerFacultyPerRoom {
		return false
	}
	return true
}

func assign(roster *model.Roster, conflicts *ConflictIndex, history *HistoryTracker, faculty string, room *model.Classroom, slot *model.Slot, day int) {
	ob, _ := roster.Obligation(faculty, room.Name)
	if ob.Remaining <= 0 {
		// Guarded by the predicate; a negative budget is a contract bug.
		panic("scheduler: obligation budget underflow")
	}
	slot.Faculty = faculty
	ob.Remaining--
	history.Record(faculty, room.Name, day)
	fac, _ := roster.Faculty(faculty)
	for _, other := range fac.Rooms() {
		if other == room.Name {
			continue
		}
		conflicts.RecordCooccupancy(faculty, other, slot.Timeslot)
	}
}
