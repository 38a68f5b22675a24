package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "find [query]",
		Short: "Find people by name",
		Long:  "Find people whose name contains the query, case-insensitively.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runFind,
	}

	RootCmd.AddCommand(cmd)
}

func runFind(cmd *cobra.Command, args []string) {
	s, tree, err := loadTree(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	matches := tree.Search(strings.Join(args, " "))

	if formatFlag == "text" {
		for _, p := range matches {
			fmt.Printf("%d\t%s\n", p.ID, p.Name)
		}
		return
	}

	b, _ := json.MarshalIndent(matches, "", "  ")
	fmt.Println(string(b))
}
