// Package importer converts external row data (spreadsheets, JSON
// exports) into a consistent family tree, and renders trees back out.
//
// Import runs in two passes: first every row becomes a person record,
// then parent and spouse id columns are resolved through the relationship
// manager so the bidirectional invariants hold from the start.
package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

// RawImportRow is the tagged intermediate between a spreadsheet row and a
// Person. Every field is optional text; interpretation happens in one
// explicit mapping step instead of probing header variants at use sites.
type RawImportRow struct {
	ID         string
	Name       string
	Gender     string
	BirthDate  string
	DeathDate  string
	BirthPlace string
	Parent1ID  string
	Parent2ID  string
	SpouseIDs  string
	Bio        string
	Events     string
}

// RowIssue reports a single recoverable problem in one import row. The
// offending field is defaulted and the row still admitted, unless the
// name itself is unrecoverable.
type RowIssue struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i RowIssue) String() string {
	return fmt.Sprintf("row %d: %s: %s", i.Row, i.Field, i.Message)
}

// ToPerson maps the raw row into a Person. rowNum is 1-based and only
// used for issue reporting. Unparseable dates empty the field, an
// unparseable gender becomes unset; both are reported as issues.
func (r RawImportRow) ToPerson(rowNum int) (model.Person, []RowIssue) {
	var issues []RowIssue

	p := model.Person{
		Name:       strings.TrimSpace(r.Name),
		BirthPlace: strings.TrimSpace(r.BirthPlace),
		Bio:        strings.TrimSpace(r.Bio),
		// Spreadsheet cells hold events on one line separated by
		// semicolons; internally they are newline-delimited.
		Events: strings.ReplaceAll(strings.TrimSpace(r.Events), ";", "\n"),
	}

	switch g := model.Gender(strings.ToLower(strings.TrimSpace(r.Gender))); {
	case model.ValidGenders[g]:
		p.Gender = g
	default:
		issues = append(issues, RowIssue{rowNum, "gender", fmt.Sprintf("unknown value %q, left unset", r.Gender)})
	}

	var err error
	if p.BirthDate, err = parseCellDate(r.BirthDate); err != nil {
		issues = append(issues, RowIssue{rowNum, "birthDate", err.Error()})
	}
	if p.DeathDate, err = parseCellDate(r.DeathDate); err != nil {
		issues = append(issues, RowIssue{rowNum, "deathDate", err.Error()})
	}

	return p, issues
}

// parseCellDate accepts YYYY-MM-DD or an Excel date serial number. A
// failure yields the zero date and the error; the caller reports and
// continues.
func parseCellDate(cell string) (model.Date, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return model.Date{}, nil
	}
	if d, err := model.ParseDate(cell); err == nil {
		return d, nil
	}
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		return serialToDate(serial), nil
	}
	return model.Date{}, fmt.Errorf("unparseable date %q, field left empty", cell)
}

// serialToDate converts an Excel date serial (days since 1899-12-30) to a
// calendar date.
func serialToDate(serial float64) model.Date {
	days := int(math.Floor(serial))
	t := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return model.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// parseIDList splits a comma separated id list, dropping anything that is
// not a positive integer.
func parseIDList(s string) []model.PersonID {
	var out []model.PersonID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			continue
		}
		out = append(out, model.PersonID(n))
	}
	return out
}

// parseID reads a single id cell, returning 0 when absent or malformed.
func parseID(s string) model.PersonID {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return model.PersonID(n)
}
