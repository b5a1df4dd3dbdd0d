package scheduler

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

// Validate checks a generated timetable against the roster and policy.
// Returns false and a report for invalid timetables.
func Validate(roster *model.Roster, timetable *model.Timetable, cfg *Config) (bool, string) {
	var message string
	valid := true
	hoursConserved := true
	hasDoubleBooking := false
	withinDailyBound := true

	// Hour conservation: slots held per (faculty, classroom) must match the
	// consumed part of the obligation budget, and budgets must be drained.
	assigned := make(map[historyKey]int)
	for _, rec := range timetable.Days {
		for _, room := range rec.Rooms {
			for _, name := range room.Slots {
				if name == model.Free {
					continue
				}
				assigned[historyKey{faculty: name, classroom: room.Classroom}]++
			}
		}
	}
	for _, ob := range roster.Obligations() {
		got := assigned[historyKey{faculty: ob.Faculty, classroom: ob.Classroom}]
		if got != ob.Course.Hours-ob.Remaining {
			valid = false
			hoursConserved = false
			message += fmt.Sprintf("- %s in %s holds %d slots but consumed %d hours\n",
				ob.Faculty, ob.Classroom, got, ob.Course.Hours-ob.Remaining)
		}
	}
	unfinished := lo.Filter(roster.Obligations(), func(ob *model.Obligation, _ int) bool {
		return ob.Remaining > 0
	})
	if len(unfinished) > 0 {
		valid = false
		hoursConserved = false
		message += fmt.Sprintf("- There are %d unfinished obligations:\n", len(unfinished))
		for _, ob := range unfinished {
			message += fmt.Sprintf("    %s %s %s (%d hours left)\n", ob.Faculty, ob.Classroom, ob.Course.Code, ob.Remaining)
		}
	}

	// No faculty member may hold two classrooms at the same (day, timeslot).
	for _, rec := range timetable.Days {
		slotCount := 0
		for _, room := range rec.Rooms {
			if len(room.Slots) > slotCount {
				slotCount = len(room.Slots)
			}
		}
		for t := 0; t < slotCount; t++ {
			seen := make(map[string]string)
			for _, room := range rec.Rooms {
				if t >= len(room.Slots) || room.Slots[t] == model.Free {
					continue
				}
				name := room.Slots[t]
				if other, ok := seen[name]; ok {
					valid = false
					hasDoubleBooking = true
					message += fmt.Sprintf("- %s teaches %s and %s at day %d timeslot %d\n",
						name, other, room.Classroom, rec.Day, t+1)
				} else {
					seen[name] = room.Classroom
				}
			}
		}
	}

	// Daily load bound per (faculty, classroom, day).
	for _, rec := range timetable.Days {
		for _, room := range rec.Rooms {
			perFaculty := lo.CountValuesBy(room.Slots, func(name string) string { return name })
			for name, n := range perFaculty {
				if name != model.Free && n > cfg.MaxSlotsPerFacultyPerDay {
					valid = false
					withinDailyBound = false
					message += fmt.Sprintf("- %s holds %d slots in %s on day %d (limit %d)\n",
						name, n, room.Classroom, rec.Day, cfg.MaxSlotsPerFacultyPerDay)
				}
			}
		}
	}

	if !withinDailyBound {
		message = "[FAIL]: Daily load bound check.\n" + message
	} else {
		message = "[  OK]: Daily load bound check.\n" + message
	}
	if hasDoubleBooking {
		message = "[FAIL]: Double booking check.\n" + message
	} else {
		message = "[  OK]: Double booking check.\n" + message
	}
	if !hoursConserved {
		message = "[FAIL]: Hour conservation check.\n" + message
	} else {
		message = "[  OK]: Hour conservation check.\n" + message
	}

	return valid, message
}
