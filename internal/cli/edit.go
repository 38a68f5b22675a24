package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a person",
		Long:  "Edit a person's fields. Only the flags given change; everything else is kept. Spouse and parent links are rewired through the relationship manager.",
		Args:  cobra.ExactArgs(1),
		Run:   runEdit,
	}

	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().StringP("gender", "g", "", "Gender: male or female")
	cmd.Flags().String("birth", "", "Birth date (YYYY-MM-DD); empty clears")
	cmd.Flags().String("death", "", "Death date (YYYY-MM-DD); empty clears")
	cmd.Flags().String("place", "", "Birth place")
	cmd.Flags().String("bio", "", "Short biography")
	cmd.Flags().String("events", "", "Life events, one per line")
	cmd.Flags().String("video", "", "Video URL")
	cmd.Flags().String("parents", "", "Comma-separated parent ids; empty detaches from all parents")
	cmd.Flags().String("spouses", "", "Comma-separated spouse ids; empty dissolves all spouse links")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	id, err := parseIDArg(args[0])
	if err != nil {
		exitErr("edit", err)
	}

	ctx := cmd.Context()
	s, tree, err := loadTree(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := tree.Get(id)
	if p == nil {
		exitErr("edit", family.ErrNotFound)
	}

	fields := *p
	if cmd.Flags().Changed("name") {
		fields.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("gender") {
		g, _ := cmd.Flags().GetString("gender")
		fields.Gender = model.Gender(g)
	}
	if cmd.Flags().Changed("birth") {
		v, _ := cmd.Flags().GetString("birth")
		if fields.BirthDate, err = model.ParseDate(v); err != nil {
			exitErr("edit", err)
		}
	}
	if cmd.Flags().Changed("death") {
		v, _ := cmd.Flags().GetString("death")
		if fields.DeathDate, err = model.ParseDate(v); err != nil {
			exitErr("edit", err)
		}
	}
	if cmd.Flags().Changed("place") {
		fields.BirthPlace, _ = cmd.Flags().GetString("place")
	}
	if cmd.Flags().Changed("bio") {
		fields.Bio, _ = cmd.Flags().GetString("bio")
	}
	if cmd.Flags().Changed("events") {
		fields.Events, _ = cmd.Flags().GetString("events")
	}
	if cmd.Flags().Changed("video") {
		fields.VideoRef, _ = cmd.Flags().GetString("video")
	}

	if err := tree.Update(id, fields); err != nil {
		exitErr("edit", err)
	}

	if cmd.Flags().Changed("spouses") {
		v, _ := cmd.Flags().GetString("spouses")
		ids, err := parseIDFlag(v)
		if err != nil {
			exitErr("edit", err)
		}
		if err := tree.SetSpouses(id, ids); err != nil {
			exitErr("edit", err)
		}
	}
	if cmd.Flags().Changed("parents") {
		v, _ := cmd.Flags().GetString("parents")
		ids, err := parseIDFlag(v)
		if err != nil {
			exitErr("edit", err)
		}
		if err := tree.SetParents(id, ids); err != nil {
			exitErr("edit", err)
		}
	}

	if err := saveTree(ctx, s, tree); err != nil {
		exitErr("edit", err)
	}

	b, _ := json.Marshal(tree.Get(id))
	fmt.Println(string(b))
}
