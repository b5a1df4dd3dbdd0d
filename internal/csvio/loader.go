// Package csvio loads roster data from CSV files and exports generated
// timetables. It is the data-entry replacement for the engine: classrooms,
// courses, faculty and obligation triples come in as order-preserving rows.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

// InputFiles names the four CSV inputs of one institution setup.
type InputFiles struct {
	Classrooms  string
	Courses     string
	Faculties   string
	Obligations string
}

// ObligationCSV is one (faculty, classroom, course) triple.
type ObligationCSV struct {
	Faculty    string `csv:"Faculty"`
	Classroom  string `csv:"Classroom"`
	CourseCode string `csv:"Course_Code"`
}

// LoadRoster reads the input files and builds a roster, preserving row
// order. The returned report collects every data problem found; a non-empty
// report always comes with a non-nil error.
func LoadRoster(files InputFiles, delim rune) (*model.Roster, string, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	var report string

	classrooms := []*model.Classroom{}
	if err := unmarshalFile(files.Classrooms, &classrooms); err != nil {
		report += fmt.Sprintf("Failed to load classrooms from %s: %v\n", files.Classrooms, err)
	}

	courses := []*model.Course{}
	if err := unmarshalFile(files.Courses, &courses); err != nil {
		report += fmt.Sprintf("Failed to load courses from %s: %v\n", files.Courses, err)
	}

	faculties := []*model.Faculty{}
	if err := unmarshalFile(files.Faculties, &faculties); err != nil {
		report += fmt.Sprintf("Failed to load faculties from %s: %v\n", files.Faculties, err)
	}

	obligations := []*ObligationCSV{}
	if err := unmarshalFile(files.Obligations, &obligations); err != nil {
		report += fmt.Sprintf("Failed to load obligations from %s: %v\n", files.Obligations, err)
	}

	if report != "" {
		return nil, report, errors.New("roster input files could not be read")
	}

	roster := model.NewRoster()
	for _, c := range classrooms {
		roster.AddClassroom(c.Name)
	}
	for _, f := range faculties {
		roster.AddFaculty(f.Name)
	}
	byCode := make(map[string]model.Course, len(courses))
	for _, c := range courses {
		if _, ok := byCode[c.Code]; ok {
			report += fmt.Sprintf("Duplicate course code %s\n", c.Code)
			continue
		}
		byCode[c.Code] = *c
	}
	for _, ob := range obligations {
		course, ok := byCode[ob.CourseCode]
		if !ok {
			report += fmt.Sprintf("Obligation %s/%s references unknown course %s\n", ob.Faculty, ob.Classroom, ob.CourseCode)
			continue
		}
		if err := roster.AddObligation(ob.Faculty, ob.Classroom, course); err != nil {
			report += fmt.Sprintf("Obligation %s/%s rejected: %v\n", ob.Faculty, ob.Classroom, err)
		}
	}

	if report != "" {
		return roster, report, errors.New("roster data has integrity problems")
	}
	return roster, "", nil
}

func unmarshalFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.UnmarshalFile(f, out)
}
