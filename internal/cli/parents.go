package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parents [child-id] [parent-id]...",
		Short: "Set a person's parents",
		Long:  "Replace a person's parents with the given ids. No parent ids detaches the person from all parents, making them a root.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runParents,
	}

	RootCmd.AddCommand(cmd)
}

func runParents(cmd *cobra.Command, args []string) {
	childID, err := parseIDArg(args[0])
	if err != nil {
		exitErr("parents", err)
	}
	var parents []model.PersonID
	for _, arg := range args[1:] {
		id, err := parseIDArg(arg)
		if err != nil {
			exitErr("parents", err)
		}
		parents = append(parents, id)
	}

	ctx := cmd.Context()
	s, tree, err := loadTree(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := tree.SetParents(childID, parents); err != nil {
		exitErr("parents", err)
	}
	if err := saveTree(ctx, s, tree); err != nil {
		exitErr("parents", err)
	}

	b, _ := json.Marshal(tree.Parents(childID))
	fmt.Printf(`{"ok":true,"child":%d,"parents":%s}`+"\n", childID, b)
}
