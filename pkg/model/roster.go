package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateObligation is returned when a (faculty, classroom) pair is
// registered twice. Repeat registrations would silently reset the remaining
// hour budget, so they are rejected outright.
var ErrDuplicateObligation = errors.New("duplicate obligation")

type pairKey struct {
	faculty   string
	classroom string
}

// Obligation commits a faculty member to teach a course in one classroom.
// Remaining is decremented by the scheduler, one per assigned slot, and is
// never negative.
type Obligation struct {
	Faculty   string
	Classroom string
	Course    Course
	Remaining int
}

// Roster holds one institution's classrooms, faculty and obligations. All
// collections preserve insertion order; that order is the engine's only
// tie-breaker, so two rosters built with the same calls schedule
// identically. A Roster is owned by a single generation run at a time.
type Roster struct {
	classrooms []*Classroom
	faculties  []*Faculty
	byRoom     map[string]*Classroom
	byFaculty  map[string]*Faculty

	obligations []*Obligation
	byPair      map[pairKey]*Obligation
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		byRoom:    make(map[string]*Classroom),
		byFaculty: make(map[string]*Faculty),
		byPair:    make(map[pairKey]*Obligation),
	}
}

// AddClassroom registers a classroom. Re-adding an existing name returns the
// existing classroom.
func (r *Roster) AddClassroom(name string) *Classroom {
	if c, ok := r.byRoom[name]; ok {
		return c
	}
	c := &Classroom{Name: name}
	r.classrooms = append(r.classrooms, c)
	r.byRoom[name] = c
	return c
}

// AddFaculty registers a faculty member. Re-adding an existing name returns
// the existing faculty.
func (r *Roster) AddFaculty(name string) *Faculty {
	if f, ok := r.byFaculty[name]; ok {
		return f
	}
	f := &Faculty{Name: name}
	r.faculties = append(r.faculties, f)
	r.byFaculty[name] = f
	return f
}

// AddObligation registers that faculty teaches course in classroom, with a
// fresh remaining-hours budget of course.Hours. Both names must already be
// registered. Obligations are additive only; the same (faculty, classroom)
// pair may not be registered twice.
func (r *Roster) AddObligation(faculty, classroom string, course Course) error {
	f, ok := r.byFaculty[faculty]
	if !ok {
		return fmt.Errorf("unknown faculty %q", faculty)
	}
	c, ok := r.byRoom[classroom]
	if !ok {
		return fmt.Errorf("unknown classroom %q", classroom)
	}
	key := pairKey{faculty: faculty, classroom: classroom}
	if _, ok := r.byPair[key]; ok {
		return fmt.Errorf("%w: %s in %s", ErrDuplicateObligation, faculty, classroom)
	}
	ob := &Obligation{
		Faculty:   faculty,
		Classroom: classroom,
		Course:    course,
		Remaining: course.Hours,
	}
	r.obligations = append(r.obligations, ob)
	r.byPair[key] = ob
	f.addRoom(classroom)
	c.registerFaculty(faculty)
	return nil
}

// Classrooms returns all classrooms in registration order.
func (r *Roster) Classrooms() []*Classroom {
	return r.classrooms
}

// Faculties returns all faculty in registration order.
func (r *Roster) Faculties() []*Faculty {
	return r.faculties
}

// Classroom looks up a classroom by name.
func (r *Roster) Classroom(name string) (*Classroom, bool) {
	c, ok := r.byRoom[name]
	return c, ok
}

// Faculty looks up a faculty member by name.
func (r *Roster) Faculty(name string) (*Faculty, bool) {
	f, ok := r.byFaculty[name]
	return f, ok
}

// Obligation looks up the obligation for a (faculty, classroom) pair.
func (r *Roster) Obligation(faculty, classroom string) (*Obligation, bool) {
	ob, ok := r.byPair[pairKey{faculty: faculty, classroom: classroom}]
	return ob, ok
}

// Obligations returns all obligations in registration order.
func (r *Roster) Obligations() []*Obligation {
	return r.obligations
}

// HasRemainingHours reports whether any obligation still owes slots. This is
// the aggregator's termination condition.
func (r *Roster) HasRemainingHours() bool {
	for _, ob := range r.obligations {
		if ob.Remaining > 0 {
			return true
		}
	}
	return false
}
