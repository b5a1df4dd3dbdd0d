package scheduler

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

// Generate drives day-by-day scheduling until every obligation's hour budget
// is exhausted. Each day gets fresh slots and a fresh conflict index; the
// history tracker spans the whole run.
//
// On failure the timetable accumulated so far is still returned alongside
// the error: a day with zero new assignments yields ErrScheduleInfeasible,
// and hitting cfg.MaxDays with hours still owed yields ErrDayLimitReached.
func Generate(roster *model.Roster, cfg *Config, log zerolog.Logger) (*model.Timetable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(roster.Classrooms()) == 0 {
		return nil, fmt.Errorf("%w: no classrooms registered", ErrInvalidConfiguration)
	}
	if len(roster.Faculties()) == 0 {
		return nil, fmt.Errorf("%w: no faculty registered", ErrInvalidConfiguration)
	}

	conflicts := NewConflictIndex()
	history := NewHistoryTracker()
	timetable := &model.Timetable{}

	day := 1
	for roster.HasRemainingHours() {
		if cfg.MaxDays > 0 && day > cfg.MaxDays {
			return timetable, fmt.Errorf("%w: %d days generated, hours remain", ErrDayLimitReached, cfg.MaxDays)
		}
		for _, room := range roster.Classrooms() {
			room.ResetSlots(cfg.SlotsPerDay)
		}
		conflicts.Reset()

		placed := FillDay(roster, conflicts, history, day, cfg, log)
		if placed == 0 {
			return timetable, fmt.Errorf("day %d: %w: no slot could be filled", day, ErrScheduleInfeasible)
		}
		timetable.Days = append(timetable.Days, snapshotDay(roster, day))
		log.Info().Int("day", day).Int("assigned", placed).Msg("day scheduled")
		day++
	}
	return timetable, nil
}

// snapshotDay copies every classroom's current assignments into a day
// record, classrooms in registration order.
func snapshotDay(roster *model.Roster, day int) model.DayRecord {
	rec := model.DayRecord{Day: day}
	for _, room := range roster.Classrooms() {
		rec.Rooms = append(rec.Rooms, model.RoomDay{
			Classroom: room.Name,
			Slots:     room.Snapshot(),
		})
	}
	return rec
}
