package model

// Classroom is identified by its name. It keeps the order in which faculty
// were obligated to it (the candidate scan order) and the slot list for the
// current day.
type Classroom struct {
	Name string `csv:"classroom_id"`

	faculty []string
	slots   []*Slot
}

// FacultyOrder lists obligated faculty in registration order.
func (c *Classroom) FacultyOrder() []string {
	return c.faculty
}

func (c *Classroom) registerFaculty(name string) {
	c.faculty = append(c.faculty, name)
}

// ResetSlots replaces the slot list with fresh unassigned slots, one per
// timeslot. Called at the start of every day.
func (c *Classroom) ResetSlots(slotsPerDay int) {
	c.slots = make([]*Slot, slotsPerDay)
	for i := range c.slots {
		c.slots[i] = &Slot{Classroom: c.Name, Timeslot: i + 1}
	}
}

// Slots returns the current day's slots in timeslot order.
func (c *Classroom) Slots() []*Slot {
	return c.slots
}

// Slot returns the slot at the given 1-based timeslot, or nil if out of range.
func (c *Classroom) Slot(timeslot int) *Slot {
	if timeslot < 1 || timeslot > len(c.slots) {
		return nil
	}
	return c.slots[timeslot-1]
}

// Snapshot copies the current day's assignments as display names.
func (c *Classroom) Snapshot() []string {
	out := make([]string, len(c.slots))
	for i, s := range c.slots {
		out[i] = s.Display()
	}
	return out
}
