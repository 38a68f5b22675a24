package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "spouses [id] [spouse-id]...",
		Short: "Set a person's spouses",
		Long:  "Replace a person's spouse set with the given ids. Links are symmetric: each listed spouse gains the person back, and dropped spouses lose them. No spouse ids dissolves all links.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSpouses,
	}

	RootCmd.AddCommand(cmd)
}

func runSpouses(cmd *cobra.Command, args []string) {
	id, err := parseIDArg(args[0])
	if err != nil {
		exitErr("spouses", err)
	}
	var spouses []model.PersonID
	for _, arg := range args[1:] {
		sid, err := parseIDArg(arg)
		if err != nil {
			exitErr("spouses", err)
		}
		spouses = append(spouses, sid)
	}

	ctx := cmd.Context()
	s, tree, err := loadTree(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := tree.SetSpouses(id, spouses); err != nil {
		exitErr("spouses", err)
	}
	if err := saveTree(ctx, s, tree); err != nil {
		exitErr("spouses", err)
	}

	b, _ := json.Marshal(tree.Get(id).Spouses)
	fmt.Printf(`{"ok":true,"person":%d,"spouses":%s}`+"\n", id, b)
}
