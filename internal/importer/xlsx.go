package importer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

const sheetName = "Family"

// WorkbookHeader is the column layout of import and export workbooks.
var WorkbookHeader = []string{
	"ID",
	"Name",
	"Gender (male/female)",
	"Birth Date (YYYY-MM-DD)",
	"Death Date (YYYY-MM-DD)",
	"Birth Place",
	"Parent 1 ID",
	"Parent 2 ID",
	"Spouse IDs (comma separated)",
	"Bio",
	"Events (separate with ;)",
}

var columnWidths = []float64{5, 20, 18, 25, 25, 25, 15, 15, 25, 40, 50}

// headerFields maps a normalized header cell to the RawImportRow field it
// fills. Long and short spellings are both accepted, but the mapping is
// this one explicit table.
var headerFields = map[string]func(*RawImportRow, string){
	"id":                           func(r *RawImportRow, v string) { r.ID = v },
	"name":                         func(r *RawImportRow, v string) { r.Name = v },
	"gender":                       func(r *RawImportRow, v string) { r.Gender = v },
	"gender (male/female)":         func(r *RawImportRow, v string) { r.Gender = v },
	"birth date":                   func(r *RawImportRow, v string) { r.BirthDate = v },
	"birth date (yyyy-mm-dd)":      func(r *RawImportRow, v string) { r.BirthDate = v },
	"death date":                   func(r *RawImportRow, v string) { r.DeathDate = v },
	"death date (yyyy-mm-dd)":      func(r *RawImportRow, v string) { r.DeathDate = v },
	"birth place":                  func(r *RawImportRow, v string) { r.BirthPlace = v },
	"parent id":                    func(r *RawImportRow, v string) { r.Parent1ID = v },
	"parent 1 id":                  func(r *RawImportRow, v string) { r.Parent1ID = v },
	"parent 2 id":                  func(r *RawImportRow, v string) { r.Parent2ID = v },
	"spouse id":                    func(r *RawImportRow, v string) { r.SpouseIDs = v },
	"spouse ids":                   func(r *RawImportRow, v string) { r.SpouseIDs = v },
	"spouse ids (comma separated)": func(r *RawImportRow, v string) { r.SpouseIDs = v },
	"bio":                          func(r *RawImportRow, v string) { r.Bio = v },
	"events":                       func(r *RawImportRow, v string) { r.Events = v },
	"events (separate with ;)":     func(r *RawImportRow, v string) { r.Events = v },
}

// ReadWorkbook reads raw rows from the first sheet of an xlsx file. The
// first row must be a header; unknown columns are ignored.
func ReadWorkbook(path string) ([]RawImportRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	setters := make([]func(*RawImportRow, string), len(rows[0]))
	known := 0
	for col, cell := range rows[0] {
		if set, ok := headerFields[strings.ToLower(strings.TrimSpace(cell))]; ok {
			setters[col] = set
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("sheet %q has no recognizable header row", sheets[0])
	}

	var out []RawImportRow
	for _, row := range rows[1:] {
		var raw RawImportRow
		empty := true
		for col, cell := range row {
			if col >= len(setters) || setters[col] == nil {
				continue
			}
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
			setters[col](&raw, cell)
		}
		if empty {
			continue
		}
		out = append(out, raw)
	}
	return out, nil
}

// WriteWorkbook renders the whole tree to an xlsx file, with the parent
// columns derived from the graph so the file round-trips through
// ReadWorkbook.
func WriteWorkbook(tree *family.Tree, path string) error {
	rows := make([][]any, 0, tree.Len())
	for _, p := range tree.All() {
		parents := tree.Parents(p.ID)
		var parent1, parent2 any
		if len(parents) > 0 {
			parent1 = int(parents[0])
		}
		if len(parents) > 1 {
			parent2 = int(parents[1])
		}

		spouses := make([]string, 0, len(p.Spouses))
		for _, s := range p.Spouses {
			spouses = append(spouses, fmt.Sprint(int(s)))
		}

		rows = append(rows, []any{
			int(p.ID),
			p.Name,
			string(p.Gender),
			p.BirthDate.String(),
			p.DeathDate.String(),
			p.BirthPlace,
			parent1,
			parent2,
			strings.Join(spouses, ","),
			p.Bio,
			strings.ReplaceAll(p.Events, "\n", ";"),
		})
	}
	return writeSheet(path, rows)
}

// WriteTemplate writes an empty workbook with the header row and a few
// sample rows showing the expected format.
func WriteTemplate(path string) error {
	sample := [][]any{
		{1, "Ivan Petrovich", "male", "1920-05-15", "1995-12-03", "Moscow", nil, nil, "2", "War veteran", "1941 - Drafted;1945 - Returned"},
		{2, "Anna Sergeevna", "female", "1925-08-20", "", "Saint Petersburg", nil, nil, "1", "Doctor", "1945 - Graduated medical school"},
		{3, "Maria Ivanovna", "female", "1950-03-10", "", "Moscow", 1, 2, "", "Teacher", ""},
	}
	return writeSheet(path, sample)
}

func writeSheet(path string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, header := range WorkbookHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("set header style: %w", err)
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		f.SetColWidth(sheetName, name, name, columnWidths[col])
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// PeopleFromJSON builds a tree from a JSON export. The records already
// carry their children/spouses sets, so no second pass is needed; the
// parent index is rebuilt by Load.
func PeopleFromJSON(people []model.Person) *family.Tree {
	return family.Load(people)
}
