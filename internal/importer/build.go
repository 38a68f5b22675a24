package importer

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

// BuildTree assembles a family tree from raw rows. Rows without a usable
// name are rejected; any other malformed field is defaulted and reported.
// The returned tree fully replaces whatever the caller held before.
func BuildTree(rows []RawImportRow, logger *zap.Logger) (*family.Tree, []RowIssue) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var issues []RowIssue
	people := make([]model.Person, 0, len(rows))
	rowIDs := make([]model.PersonID, len(rows)) // final id per row, 0 = rejected
	used := make(map[model.PersonID]bool)
	var maxID model.PersonID

	// First pass: one record per row, ids assigned defensively.
	for i, row := range rows {
		rowNum := i + 1

		p, rowIssues := row.ToPerson(rowNum)
		issues = append(issues, rowIssues...)
		if p.Name == "" {
			issues = append(issues, RowIssue{rowNum, "name", "missing name, row skipped"})
			continue
		}

		id := parseID(row.ID)
		if id == 0 {
			id = model.PersonID(rowNum)
		}
		if used[id] {
			issues = append(issues, RowIssue{rowNum, "id", "duplicate id, reassigned"})
			id = maxID + 1
		}
		used[id] = true
		if id > maxID {
			maxID = id
		}

		p.ID = id
		rowIDs[i] = id
		people = append(people, p)
	}

	tree := family.Load(people)

	// Second pass: resolve parent and spouse columns through the
	// relationship manager so back-links come out consistent. Ids that
	// do not resolve are dropped silently.
	for i, row := range rows {
		id := rowIDs[i]
		if id == 0 {
			continue
		}
		rowNum := i + 1

		var parents []model.PersonID
		if pid := parseID(row.Parent1ID); pid != 0 {
			parents = append(parents, pid)
		}
		if pid := parseID(row.Parent2ID); pid != 0 {
			parents = append(parents, pid)
		}
		if len(parents) > 0 {
			if err := tree.SetParents(id, parents); err != nil {
				issues = append(issues, RowIssue{rowNum, "parents", err.Error()})
			}
		}

		if spouses := parseIDList(row.SpouseIDs); len(spouses) > 0 {
			err := tree.SetSpouses(id, spouses)
			if errors.Is(err, family.ErrSelfSpouse) {
				issues = append(issues, RowIssue{rowNum, "spouses", "row lists itself as spouse, spouses left empty"})
			} else if err != nil {
				issues = append(issues, RowIssue{rowNum, "spouses", err.Error()})
			}
		}
	}

	logger.Info("import assembled",
		zap.Int("rows", len(rows)),
		zap.Int("people", tree.Len()),
		zap.Int("issues", len(issues)),
	)
	return tree, issues
}
