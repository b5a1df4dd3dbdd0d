package model

// RoomDay is one classroom's slot assignments for one day, as display names
// (faculty name or "free").
type RoomDay struct {
	Classroom string
	Slots     []string
}

// DayRecord is the snapshot of every classroom for one day. Classrooms
// appear in registration order.
type DayRecord struct {
	Day   int
	Rooms []RoomDay
}

// Timetable is the ordered sequence of day records produced by one
// generation run. Append-only; this is the sole artifact downstream
// renderers consume.
type Timetable struct {
	Days []DayRecord
}

// TimetableCSVRow is the flattened export format, one row per
// (day, classroom, timeslot).
type TimetableCSVRow struct {
	Day        int    `csv:"day"`
	Classroom  string `csv:"classroom"`
	Timeslot   int    `csv:"timeslot"`
	Faculty    string `csv:"faculty"`
	CourseCode string `csv:"course_code"`
	CourseName string `csv:"course_name"`
}
