package scheduler

import "fmt"

// Config holds the engine's scheduling policy. The optional rule toggles
// reproduce older deployments and default to off.
type Config struct {
	// SlotsPerDay is the number of teachable slots each classroom has per
	// day. Observed deployments use 3 or 7.
	SlotsPerDay int `json:"slots_per_day"`
	// MaxSlotsPerFacultyPerDay bounds how many slots one faculty member may
	// teach in the same classroom on one day.
	MaxSlotsPerFacultyPerDay int `json:"max_slots_per_faculty_per_day"`
	// HeavyDayThreshold is the per-day slot count at which an earlier day
	// counts as "heavy" for the fairness rule. A faculty member that already
	// had a heavy day may not book a second slot on a later day.
	HeavyDayThreshold int `json:"heavy_day_threshold"`
	// DistinctFromPreviousSlotInRoom forbids a faculty member from teaching
	// the timeslot immediately after their own in the same room.
	DistinctFromPreviousSlotInRoom bool `json:"distinct_from_previous_slot_in_room"`
	// MaxTotalSlotsPerFacultyPerRoom caps the total slots a faculty member
	// may ever hold in one room across the whole run. Zero disables the cap.
	MaxTotalSlotsPerFacultyPerRoom int `json:"max_total_slots_per_faculty_per_room"`
	// MaxDays is a hard cap on generated days. Zero means unbounded; the
	// zero-progress check still prevents livelock either way.
	MaxDays int `json:"max_days"`
}

// NewDefaultConfig returns the configuration of the common deployment:
// three slots per day, at most two per faculty per room per day.
func NewDefaultConfig() *Config {
	return &Config{
		SlotsPerDay:              3,
		MaxSlotsPerFacultyPerDay: 2,
		HeavyDayThreshold:        2,
	}
}

// SetDefaults fills unset numeric fields with the defaults.
func (c *Config) SetDefaults() {
	if c.SlotsPerDay == 0 {
		c.SlotsPerDay = 3
	}
	if c.MaxSlotsPerFacultyPerDay == 0 {
		c.MaxSlotsPerFacultyPerDay = 2
	}
	if c.HeavyDayThreshold == 0 {
		c.HeavyDayThreshold = 2
	}
}

// Validate checks mandatory fields.
func (c *Config) Validate() error {
	if c.SlotsPerDay <= 0 {
		return fmt.Errorf("%w: slots per day must be positive, got %d", ErrInvalidConfiguration, c.SlotsPerDay)
	}
	if c.MaxSlotsPerFacultyPerDay <= 0 {
		return fmt.Errorf("%w: max slots per faculty per day must be positive, got %d", ErrInvalidConfiguration, c.MaxSlotsPerFacultyPerDay)
	}
	if c.HeavyDayThreshold <= 0 {
		return fmt.Errorf("%w: heavy day threshold must be positive, got %d", ErrInvalidConfiguration, c.HeavyDayThreshold)
	}
	if c.MaxTotalSlotsPerFacultyPerRoom < 0 {
		return fmt.Errorf("%w: max total slots per faculty per room must not be negative", ErrInvalidConfiguration)
	}
	if c.MaxDays < 0 {
		return fmt.Errorf("%w: max days must not be negative", ErrInvalidConfiguration)
	}
	return nil
}
