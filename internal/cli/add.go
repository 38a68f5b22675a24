package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a person",
		Long:  "Add a person to the tree. Parents and spouses can be linked at creation with --parents and --spouses.",
		Args:  cobra.ExactArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("gender", "g", "", "Gender: male or female")
	cmd.Flags().String("birth", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().String("death", "", "Death date (YYYY-MM-DD)")
	cmd.Flags().String("place", "", "Birth place")
	cmd.Flags().String("bio", "", "Short biography")
	cmd.Flags().String("events", "", "Life events, one per line, e.g. \"1941 - Drafted\"")
	cmd.Flags().String("video", "", "Video URL")
	cmd.Flags().String("parents", "", "Comma-separated parent ids (at most 2 by convention)")
	cmd.Flags().String("spouses", "", "Comma-separated spouse ids")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	gender, _ := cmd.Flags().GetString("gender")
	birth, _ := cmd.Flags().GetString("birth")
	death, _ := cmd.Flags().GetString("death")
	place, _ := cmd.Flags().GetString("place")
	bio, _ := cmd.Flags().GetString("bio")
	events, _ := cmd.Flags().GetString("events")
	video, _ := cmd.Flags().GetString("video")
	parentsStr, _ := cmd.Flags().GetString("parents")
	spousesStr, _ := cmd.Flags().GetString("spouses")

	p := model.Person{
		Name:       args[0],
		Gender:     model.Gender(gender),
		BirthPlace: place,
		Bio:        bio,
		Events:     events,
		VideoRef:   video,
	}

	var err error
	if p.BirthDate, err = model.ParseDate(birth); err != nil {
		exitErr("add", err)
	}
	if p.DeathDate, err = model.ParseDate(death); err != nil {
		exitErr("add", err)
	}
	if p.Spouses, err = parseIDFlag(spousesStr); err != nil {
		exitErr("add", err)
	}
	parents, err := parseIDFlag(parentsStr)
	if err != nil {
		exitErr("add", err)
	}

	ctx := cmd.Context()
	s, tree, err := loadTree(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	id, err := tree.Add(p)
	if err != nil {
		exitErr("add", err)
	}
	if len(parents) > 0 {
		if err := tree.SetParents(id, parents); err != nil {
			exitErr("add", err)
		}
	}
	if err := saveTree(ctx, s, tree); err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(tree.Get(id))
	fmt.Println(string(b))
}
