package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func TestBuildTreeResolvesRelationships(t *testing.T) {
	rows := []RawImportRow{
		{ID: "1", Name: "Ivan", Gender: "male", BirthDate: "1920-05-15", SpouseIDs: "2"},
		{ID: "2", Name: "Anna", Gender: "female", SpouseIDs: "1"},
		{ID: "3", Name: "Maria", Gender: "female", Parent1ID: "1", Parent2ID: "2"},
	}

	tree, issues := BuildTree(rows, nil)
	require.Empty(t, issues)
	require.Equal(t, 3, tree.Len())

	ivan := tree.Get(1)
	require.NotNil(t, ivan)
	assert.Equal(t, []model.PersonID{2}, ivan.Spouses)
	assert.Equal(t, []model.PersonID{3}, ivan.Children)

	// Parent columns reference a row appearing later in the file; the
	// two-pass build must still resolve them.
	assert.Equal(t, []model.PersonID{1, 2}, tree.Parents(3))
}

func TestBuildTreeAssignsMissingIDs(t *testing.T) {
	rows := []RawImportRow{
		{Name: "A"},
		{Name: "B"},
	}

	tree, issues := BuildTree(rows, nil)
	assert.Empty(t, issues)
	require.Equal(t, 2, tree.Len())
	assert.NotNil(t, tree.Get(1))
	assert.NotNil(t, tree.Get(2))
}

func TestBuildTreeSkipsNamelessRows(t *testing.T) {
	rows := []RawImportRow{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "   "},
	}

	tree, issues := BuildTree(rows, nil)
	assert.Equal(t, 1, tree.Len())
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Row)
	assert.Equal(t, "name", issues[0].Field)
}

func TestBuildTreeReassignsDuplicateIDs(t *testing.T) {
	rows := []RawImportRow{
		{ID: "5", Name: "A"},
		{ID: "5", Name: "B"},
	}

	tree, issues := BuildTree(rows, nil)
	require.Equal(t, 2, tree.Len())
	require.Len(t, issues, 1)
	assert.Equal(t, "id", issues[0].Field)

	// The clashing row moves past the highest id seen so far.
	b := tree.Get(6)
	require.NotNil(t, b)
	assert.Equal(t, "B", b.Name)
}

func TestBuildTreeReportsBadFieldsButKeepsRow(t *testing.T) {
	rows := []RawImportRow{
		{ID: "1", Name: "A", Gender: "unknown", BirthDate: "not-a-date"},
	}

	tree, issues := BuildTree(rows, nil)
	require.Equal(t, 1, tree.Len())

	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}
	assert.ElementsMatch(t, []string{"gender", "birthDate"}, fields)

	p := tree.Get(1)
	assert.Empty(t, string(p.Gender))
	assert.True(t, p.BirthDate.IsZero())
}

func TestBuildTreeSelfSpouseRow(t *testing.T) {
	rows := []RawImportRow{
		{ID: "1", Name: "A", SpouseIDs: "1"},
	}

	tree, issues := BuildTree(rows, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, "spouses", issues[0].Field)
	assert.Empty(t, tree.Get(1).Spouses)
}

func TestBuildTreeDropsDanglingReferences(t *testing.T) {
	rows := []RawImportRow{
		{ID: "1", Name: "A", Parent1ID: "99", SpouseIDs: "42"},
	}

	tree, issues := BuildTree(rows, nil)
	assert.Empty(t, issues)
	assert.Empty(t, tree.Parents(1))
	assert.Empty(t, tree.Get(1).Spouses)
}

func TestToPersonEventsSeparator(t *testing.T) {
	row := RawImportRow{Name: "A", Events: "1941 - Drafted;1945 - Returned"}
	p, issues := row.ToPerson(1)
	require.Empty(t, issues)
	assert.Equal(t, "1941 - Drafted\n1945 - Returned", p.Events)
}

func TestParseCellDateSerial(t *testing.T) {
	// 25569 is the spreadsheet serial for 1970-01-01.
	d, err := parseCellDate("25569")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01", d.String())

	d, err = parseCellDate("1950-03-10")
	require.NoError(t, err)
	assert.Equal(t, "1950-03-10", d.String())

	d, err = parseCellDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseCellDate("soon")
	assert.Error(t, err)
}

func TestParseIDList(t *testing.T) {
	assert.Equal(t, []model.PersonID{2, 7}, parseIDList(" 2, 7 "))
	assert.Equal(t, []model.PersonID{3}, parseIDList("3, x, -1, 0"))
	assert.Nil(t, parseIDList(""))
}
