package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
	"github.com/Andreyhiitola/family-tree-v2/internal/importer"
	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a tree from a JSON export or an xlsx workbook",
		Long:  "Import replaces the whole tree in one step. JSON files use the export format; .xlsx workbooks use the template layout (see the template command). Malformed row fields are defaulted and reported to stderr.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	path := args[0]

	var tree *family.Tree
	var issues []importer.RowIssue

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err := importer.ReadWorkbook(path)
		if err != nil {
			exitErr("import", err)
		}
		tree, issues = importer.BuildTree(rows, newLogger())
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			exitErr("read file", err)
		}
		var people []model.Person
		if err := json.Unmarshal(data, &people); err != nil {
			exitErr("parse json", err)
		}
		tree = importer.PeopleFromJSON(people)
	}

	ctx := cmd.Context()
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := saveTree(ctx, s, tree); err != nil {
		exitErr("import", err)
	}

	for _, issue := range issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", issue)
	}
	fmt.Printf(`{"ok":true,"imported":%d,"issues":%d}`+"\n", tree.Len(), len(issues))
}
