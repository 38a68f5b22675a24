package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/importer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "template [file]",
		Short: "Write an xlsx import template",
		Long:  "Write an xlsx workbook with the expected header row and a few sample people, ready to fill in and import.",
		Args:  cobra.ExactArgs(1),
		Run:   runTemplate,
	}

	RootCmd.AddCommand(cmd)
}

func runTemplate(cmd *cobra.Command, args []string) {
	if err := importer.WriteTemplate(args[0]); err != nil {
		exitErr("template", err)
	}
	fmt.Printf(`{"ok":true,"file":%q}`+"\n", args[0])
}
