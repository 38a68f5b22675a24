package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the derived family forest",
		Long:  "Print the forest derived from the graph: roots at the top, children nested below, including children linked through a spouse.",
		Run:   runTree,
	}

	RootCmd.AddCommand(cmd)
}

func runTree(cmd *cobra.Command, args []string) {
	s, tree, err := loadTree(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	forest, err := tree.BuildForest()
	if err != nil {
		exitErr("tree", err)
	}

	if formatFlag == "text" {
		for _, node := range forest {
			printNode(node, 0)
		}
		return
	}

	b, _ := json.MarshalIndent(forest, "", "  ")
	fmt.Println(string(b))
}

func printNode(n *family.Node, depth int) {
	p := n.Person
	line := fmt.Sprintf("%s%s (#%d)", strings.Repeat("  ", depth), p.Name, p.ID)
	switch {
	case !p.DeathDate.IsZero():
		birth := "?"
		if !p.BirthDate.IsZero() {
			birth = fmt.Sprint(p.BirthDate.Year)
		}
		line += fmt.Sprintf(" %s-%d", birth, p.DeathDate.Year)
	case !p.BirthDate.IsZero():
		line += fmt.Sprintf(" b.%d", p.BirthDate.Year)
	}
	fmt.Println(line)
	for _, child := range n.Children {
		printNode(child, depth+1)
	}
}
