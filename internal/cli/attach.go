package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
)

func init() {
	cmd := &cobra.Command{
		Use:   "attach [id] [file]",
		Short: "Attach a photo or audio recording to a person",
		Long:  "Store a media file as an opaque blob and reference it from the person. Photos accumulate (the first is the primary one); audio replaces the previous recording.",
		Args:  cobra.ExactArgs(2),
		Run:   runAttach,
	}

	cmd.Flags().String("kind", "photo", "Media kind: photo or audio")

	RootCmd.AddCommand(cmd)
}

func runAttach(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("kind")
	if kind != "photo" && kind != "audio" {
		exitErr("attach", fmt.Errorf("unknown kind %q (want photo or audio)", kind))
	}

	id, err := parseIDArg(args[0])
	if err != nil {
		exitErr("attach", err)
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		exitErr("read file", err)
	}

	ctx := cmd.Context()
	s, tree, err := loadTree(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := tree.Get(id)
	if p == nil {
		exitErr("attach", family.ErrNotFound)
	}

	ref, err := s.PutBlob(ctx, kind, data)
	if err != nil {
		exitErr("attach", err)
	}

	fields := *p
	if kind == "photo" {
		fields.Photos = append(fields.Photos, ref)
	} else {
		if fields.AudioRef != "" {
			s.DeleteBlob(ctx, fields.AudioRef)
		}
		fields.AudioRef = ref
	}
	if err := tree.Update(id, fields); err != nil {
		exitErr("attach", err)
	}
	if err := saveTree(ctx, s, tree); err != nil {
		exitErr("attach", err)
	}

	fmt.Printf(`{"ok":true,"person":%d,"kind":%q,"ref":%q}`+"\n", id, kind, ref)
}
