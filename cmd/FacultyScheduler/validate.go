package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nivedh-m/FacultyScheduler/internal/config"
	"github.com/nivedh-m/FacultyScheduler/internal/csvio"
	"github.com/nivedh-m/FacultyScheduler/internal/scheduler"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Regenerate the timetable and check it against the scheduling rules",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate rebuilds the timetable from the roster files and runs the rule
// checks on it. Generation is deterministic, so this reproduces exactly what
// generate would export.
func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Str("component", "scheduler").Logger().
		Level(cfg.Logging.ZerologLevel())

	roster, report, err := csvio.LoadRoster(csvio.InputFiles{
		Classrooms:  cfg.Input.ClassroomsFile,
		Courses:     cfg.Input.CoursesFile,
		Faculties:   cfg.Input.FacultiesFile,
		Obligations: cfg.Input.ObligationsFile,
	}, cfg.Input.DelimiterRune())
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), report)
		return fmt.Errorf("load roster: %w", err)
	}

	timetable, genErr := scheduler.Generate(roster, &cfg.Engine, log)
	if genErr != nil && timetable == nil {
		return genErr
	}
	if genErr != nil {
		log.Warn().Err(genErr).Int("days", len(timetable.Days)).Msg("generation stopped early")
	}

	valid, msg := scheduler.Validate(roster, timetable, &cfg.Engine)
	fmt.Fprint(cmd.OutOrStdout(), msg)
	if !valid {
		return fmt.Errorf("timetable failed validation")
	}
	return genErr
}
