package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nivedh-m/FacultyScheduler/internal/config"
	"github.com/nivedh-m/FacultyScheduler/internal/csvio"
	"github.com/nivedh-m/FacultyScheduler/internal/scheduler"
	"github.com/nivedh-m/FacultyScheduler/internal/viz"
	"github.com/nivedh-m/FacultyScheduler/pkg/export"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a timetable from the roster CSV files",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
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
		// A partial timetable is still worth exporting for diagnostics.
		log.Warn().Err(genErr).Int("days", len(timetable.Days)).Msg("generation stopped early")
	}

	valid, msg := scheduler.Validate(roster, timetable, &cfg.Engine)
	fmt.Fprint(cmd.OutOrStdout(), msg)
	if !valid && genErr == nil {
		log.Warn().Msg("generated timetable failed validation")
	}

	csvio.PrintTimetable(timetable)
	if cfg.Output.CSVFile != "" {
		if err := csvio.ExportTimetable(timetable, roster, cfg.Output.CSVFile); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.CSVFile).Msg("csv exported")
	}
	if cfg.Output.PDFFile != "" {
		data := export.TimetableDataset(timetable)
		pdf, err := export.NewPDFExporter().Render(data, "Timetable")
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output.PDFFile, pdf, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Output.PDFFile, err)
		}
		log.Info().Str("path", cfg.Output.PDFFile).Msg("pdf exported")
	}
	if cfg.Output.DOTFile != "" && len(timetable.Days) > 0 {
		last := timetable.Days[len(timetable.Days)-1]
		dotText, err := viz.DayGraphDOT(roster, last)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output.DOTFile, []byte(dotText), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Output.DOTFile, err)
		}
		log.Info().Str("path", cfg.Output.DOTFile).Int("day", last.Day).Msg("conflict graph exported")
	}

	return genErr
}
