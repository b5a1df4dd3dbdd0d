package model

// Free is the placeholder reported for a slot nobody teaches.
const Free = "free"

// Slot is one (classroom, timeslot) cell of the current day. Timeslot is
// 1-based. Faculty stays empty until the scheduler assigns it; slots are
// recreated fresh every day and never carry assignments over.
type Slot struct {
	Classroom string
	Timeslot  int
	Faculty   string
}

// Assigned reports whether a faculty member holds this slot.
func (s *Slot) Assigned() bool {
	return s.Faculty != ""
}

// Display returns the assigned faculty name, or Free.
func (s *Slot) Display() string {
	if s.Faculty == "" {
		return Free
	}
	return s.Faculty
}
