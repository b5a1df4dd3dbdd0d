package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

func TestDayGraphDOT(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("CSE_A")
	r.AddClassroom("CSE_B")
	r.AddFaculty("Ramu")
	r.AddFaculty("Brock")
	require.NoError(t, r.AddObligation("Ramu", "CSE_A", model.Course{Code: "CS101", Hours: 1}))
	require.NoError(t, r.AddObligation("Ramu", "CSE_B", model.Course{Code: "CS103", Hours: 1}))
	require.NoError(t, r.AddObligation("Brock", "CSE_B", model.Course{Code: "CS102", Hours: 1}))

	rec := model.DayRecord{
		Day: 1,
		Rooms: []model.RoomDay{
			{Classroom: "CSE_A", Slots: []string{"Ramu", model.Free}},
			{Classroom: "CSE_B", Slots: []string{"Brock", "Ramu"}},
		},
	}

	out, err := DayGraphDOT(r, rec)
	require.NoError(t, err)

	assert.Contains(t, out, "day_1")
	// Every slot is a node, assigned or not.
	assert.Contains(t, out, "CSE_A_P2")
	// Ramu teaches in both rooms, so same-timeslot slots are linked.
	assert.Contains(t, out, "CSE_A_P1 -- CSE_B_P1")
	assert.Contains(t, out, "CSE_A_P2 -- CSE_B_P2")
	// Brock has a single room and contributes no edge.
	assert.NotContains(t, out, "CSE_B_P1 -- CSE_B_P2")
}

func TestDayGraphDOTNoConflicts(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("CSE_A")
	r.AddFaculty("Ash")
	require.NoError(t, r.AddObligation("Ash", "CSE_A", model.Course{Code: "CS103", Hours: 1}))

	rec := model.DayRecord{
		Day:   2,
		Rooms: []model.RoomDay{{Classroom: "CSE_A", Slots: []string{"Ash"}}},
	}

	out, err := DayGraphDOT(r, rec)
	require.NoError(t, err)
	assert.Contains(t, out, "CSE_A_P1")
	assert.NotContains(t, out, "--")
}
