package csvio

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

// ExportTimetable flattens the timetable into one row per
// (day, classroom, timeslot) and writes it to the CSV file at path.
func ExportTimetable(timetable *model.Timetable, roster *model.Roster, path string) error {
	rows := formatTimetable(timetable, roster)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// TimetableString renders the same rows as a CSV string.
func TimetableString(timetable *model.Timetable, roster *model.Roster) (string, error) {
	rows := formatTimetable(timetable, roster)
	return gocsv.MarshalString(&rows)
}

// PrintTimetable prints the timetable grouped by day.
func PrintTimetable(timetable *model.Timetable) {
	for _, rec := range timetable.Days {
		fmt.Printf("Day %d\n", rec.Day)
		for _, room := range rec.Rooms {
			fmt.Printf("  %-12s %s\n", room.Classroom, strings.Join(room.Slots, ", "))
		}
		fmt.Println()
	}
}

func formatTimetable(timetable *model.Timetable, roster *model.Roster) []*model.TimetableCSVRow {
	var rows []*model.TimetableCSVRow
	for _, rec := range timetable.Days {
		for _, room := range rec.Rooms {
			for i, name := range room.Slots {
				row := &model.TimetableCSVRow{
					Day:       rec.Day,
					Classroom: room.Classroom,
					Timeslot:  i + 1,
					Faculty:   name,
				}
				if name != model.Free {
					if ob, ok := roster.Obligation(name, room.Classroom); ok {
						row.CourseCode = ob.Course.Code
						row.CourseName = ob.Course.Name
					}
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}
