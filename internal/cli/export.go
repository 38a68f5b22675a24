package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/importer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the tree as JSON or an xlsx workbook",
		Long:  "Without a file, print the full record array as JSON. A .json file gets the same; a .xlsx file gets a workbook with derived parent columns that round-trips through import.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, tree, err := loadTree(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if len(args) == 0 {
		b, _ := json.MarshalIndent(tree.All(), "", "  ")
		fmt.Println(string(b))
		return
	}

	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		if err := importer.WriteWorkbook(tree, path); err != nil {
			exitErr("export", err)
		}
	default:
		b, _ := json.MarshalIndent(tree.All(), "", "  ")
		if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
			exitErr("export", err)
		}
	}

	fmt.Printf(`{"ok":true,"people":%d,"file":%q}`+"\n", tree.Len(), path)
}
