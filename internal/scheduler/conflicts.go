package scheduler

import "sort"

type slotRef struct {
	classroom string
	timeslot  int
}

// ConflictIndex tracks, per (classroom, timeslot) cell of the current day,
// which faculty names may no longer be assigned there. When a faculty member
// takes a slot, their name is recorded against the same timeslot of every
// other classroom they owe hours to, pre-empting a simultaneous booking in
// two rooms. Entries accumulate within a day and are discarded on Reset.
type ConflictIndex struct {
	excluded map[slotRef]map[string]struct{}
}

// NewConflictIndex creates an empty index.
func NewConflictIndex() *ConflictIndex {
	return &ConflictIndex{excluded: make(map[slotRef]map[string]struct{})}
}

// Reset discards all recorded conflicts for a new day.
func (ci *ConflictIndex) Reset() {
	ci.excluded = make(map[slotRef]map[string]struct{})
}

// RecordCooccupancy marks faculty as banned from the given timeslot of
// classroom. Called once per other-classroom obligation after every
// successful assignment, whether or not that cell is filled yet.
func (ci *ConflictIndex) RecordCooccupancy(faculty, classroom string, timeslot int) {
	ref := slotRef{classroom: classroom, timeslot: timeslot}
	set, ok := ci.excluded[ref]
	if !ok {
		set = make(map[string]struct{})
		ci.excluded[ref] = set
	}
	set[faculty] = struct{}{}
}

// IsConflicting reports whether assigning faculty to the given cell would
// double-book them across classrooms at that timeslot.
func (ci *ConflictIndex) IsConflicting(classroom string, timeslot int, faculty string) bool {
	set, ok := ci.excluded[slotRef{classroom: classroom, timeslot: timeslot}]
	if !ok {
		return false
	}
	_, banned := set[faculty]
	return banned
}

// ConflictingFaculty lists the faculty names banned from the given cell, in
// sorted order.
func (ci *ConflictIndex) ConflictingFaculty(classroom string, timeslot int) []string {
	set, ok := ci.excluded[slotRef{classroom: classroom, timeslot: timeslot}]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
