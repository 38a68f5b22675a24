package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a person",
		Long:  "Delete a person. Spouse links and parent/child links pointing at them are cleaned up; their stored photos and audio are removed.",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	id, err := parseIDArg(args[0])
	if err != nil {
		exitErr("rm", err)
	}

	ctx := cmd.Context()
	s, tree, err := loadTree(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := tree.Get(id)
	if err := tree.Remove(id); err != nil {
		exitErr("rm", err)
	}
	if err := saveTree(ctx, s, tree); err != nil {
		exitErr("rm", err)
	}

	// Blob cleanup happens after the snapshot is durable; a missing
	// blob is not an error.
	if p != nil {
		for _, ref := range p.Photos {
			s.DeleteBlob(ctx, ref)
		}
		if p.AudioRef != "" {
			s.DeleteBlob(ctx, p.AudioRef)
		}
	}

	fmt.Printf(`{"ok":true,"removed":%d}`+"\n", id)
}
