package scheduler

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

// buildSampleRoster mirrors the three-classroom department used during
// development: five faculty, six obligations, two of them for the same
// faculty member in different rooms.
func buildSampleRoster(t *testing.T) *model.Roster {
	t.Helper()
	r := model.NewRoster()
	for _, room := range []string{"CSE_A", "CSE_B", "CSE_C"} {
		r.AddClassroom(room)
	}
	for _, name := range []string{"Ramu", "Ash", "Brock", "Delia", "Oak"} {
		r.AddFaculty(name)
	}
	daa := model.Course{Name: "DAA", Code: "CS101", Hours: 2}
	coa := model.Course{Name: "COA", Code: "CS102", Hours: 1}
	pfl := model.Course{Name: "PFL", Code: "CS103", Hours: 1}
	require.NoError(t, r.AddObligation("Ramu", "CSE_A", daa))
	require.NoError(t, r.AddObligation("Ramu", "CSE_B", pfl))
	require.NoError(t, r.AddObligation("Ash", "CSE_A", pfl))
	require.NoError(t, r.AddObligation("Brock", "CSE_B", coa))
	require.NoError(t, r.AddObligation("Delia", "CSE_C", daa))
	require.NoError(t, r.AddObligation("Oak", "CSE_C", coa))
	return r
}

func TestGenerateConservesHours(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("A")
	r.AddClassroom("B")
	r.AddFaculty("X")
	require.NoError(t, r.AddObligation("X", "A", model.Course{Code: "C1", Hours: 2}))

	tt, err := Generate(r, NewDefaultConfig(), zerolog.Nop())
	require.NoError(t, err)

	// Two hours fit into one day under the default two-per-day bound.
	require.Len(t, tt.Days, 1)
	assert.Equal(t, []string{"X", "X", model.Free}, tt.Days[0].Rooms[0].Slots)
	assert.Equal(t, []string{model.Free, model.Free, model.Free}, tt.Days[0].Rooms[1].Slots)

	ob, _ := r.Obligation("X", "A")
	assert.Equal(t, 0, ob.Remaining)
}

func TestGeneratePreemptsCrossRoomConflict(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("A")
	r.AddClassroom("B")
	r.AddFaculty("X")
	require.NoError(t, r.AddObligation("X", "A", model.Course{Code: "C1", Hours: 1}))
	require.NoError(t, r.AddObligation("X", "B", model.Course{Code: "C2", Hours: 1}))

	cfg := NewDefaultConfig()
	cfg.SlotsPerDay = 1
	tt, err := Generate(r, cfg, zerolog.Nop())
	require.NoError(t, err)

	// Day 1: A gets X, and the co-occupancy record keeps X out of B at the
	// same timeslot. The hour in B rolls over to day 2.
	require.Len(t, tt.Days, 2)
	assert.Equal(t, []string{"X"}, tt.Days[0].Rooms[0].Slots)
	assert.Equal(t, []string{model.Free}, tt.Days[0].Rooms[1].Slots)
	assert.Equal(t, []string{model.Free}, tt.Days[1].Rooms[0].Slots)
	assert.Equal(t, []string{"X"}, tt.Days[1].Rooms[1].Slots)
}

func TestGenerateInfeasibleInsteadOfLivelock(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("A")
	r.AddFaculty("X")
	require.NoError(t, r.AddObligation("X", "A", model.Course{Code: "C1", Hours: 2}))

	cfg := NewDefaultConfig()
	cfg.MaxTotalSlotsPerFacultyPerRoom = 1
	tt, err := Generate(r, cfg, zerolog.Nop())

	require.ErrorIs(t, err, ErrScheduleInfeasible)
	// The day that made progress is still reported.
	require.NotNil(t, tt)
	require.Len(t, tt.Days, 1)
	assert.Equal(t, []string{"X", model.Free, model.Free}, tt.Days[0].Rooms[0].Slots)
}

func TestGenerateDayLimit(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("A")
	r.AddFaculty("X")
	require.NoError(t, r.AddObligation("X", "A", model.Course{Code: "C1", Hours: 10}))

	cfg := NewDefaultConfig()
	cfg.MaxDays = 2
	cfg.HeavyDayThreshold = 3 // keep the fairness rule out of the way
	tt, err := Generate(r, cfg, zerolog.Nop())

	require.ErrorIs(t, err, ErrDayLimitReached)
	require.NotNil(t, tt)
	assert.Len(t, tt.Days, 2)
}

func TestGenerateRejectsEmptyRosterAndBadConfig(t *testing.T) {
	r := model.NewRoster()
	_, err := Generate(r, NewDefaultConfig(), zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	r.AddClassroom("A")
	_, err = Generate(r, NewDefaultConfig(), zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	r.AddFaculty("X")
	_, err = Generate(r, &Config{}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestFairnessRuleBlocksSecondSlotAfterHeavyDay(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("A")
	r.AddFaculty("X")
	require.NoError(t, r.AddObligation("X", "A", model.Course{Code: "C1", Hours: 4}))

	tt, err := Generate(r, NewDefaultConfig(), zerolog.Nop())
	require.NoError(t, err)

	// Day 1 is heavy (two slots). From then on X may book only one slot per
	// day in that room.
	require.Len(t, tt.Days, 3)
	assert.Equal(t, []string{"X", "X", model.Free}, tt.Days[0].Rooms[0].Slots)
	assert.Equal(t, []string{"X", model.Free, model.Free}, tt.Days[1].Rooms[0].Slots)
	assert.Equal(t, []string{"X", model.Free, model.Free}, tt.Days[2].Rooms[0].Slots)
}

func TestDistinctFromPreviousSlotInRoom(t *testing.T) {
	r := model.NewRoster()
	r.AddClassroom("A")
	r.AddFaculty("X")
	require.NoError(t, r.AddObligation("X", "A", model.Course{Code: "C1", Hours: 2}))

	cfg := NewDefaultConfig()
	cfg.DistinctFromPreviousSlotInRoom = true
	tt, err := Generate(r, cfg, zerolog.Nop())
	require.NoError(t, err)

	// Back-to-back slots are forbidden, so the second hour lands on slot 3.
	require.Len(t, tt.Days, 1)
	assert.Equal(t, []string{"X", model.Free, "X"}, tt.Days[0].Rooms[0].Slots)
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := NewDefaultConfig()
	first, err := Generate(buildSampleRoster(t), cfg, zerolog.Nop())
	require.NoError(t, err)
	second, err := Generate(buildSampleRoster(t), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSampleDepartment(t *testing.T) {
	r := buildSampleRoster(t)
	cfg := NewDefaultConfig()
	tt, err := Generate(r, cfg, zerolog.Nop())
	require.NoError(t, err)

	valid, msg := Validate(r, tt, cfg)
	assert.True(t, valid, msg)

	for _, ob := range r.Obligations() {
		assert.Zerof(t, ob.Remaining, "%s in %s still owes hours", ob.Faculty, ob.Classroom)
	}
}
