package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

// personDetail is the full view of one person with resolved relatives.
type personDetail struct {
	model.Person
	Parents     []string `json:"parentNames,omitempty"`
	SpouseNames []string `json:"spouseNames,omitempty"`
	ChildNames  []string `json:"childNames,omitempty"`
	AgeYears    int      `json:"ageYears,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a person with resolved relatives",
		Long:  "Show one person in full: fields plus parent, spouse and child names. Children include those linked through a spouse.",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	id, err := parseIDArg(args[0])
	if err != nil {
		exitErr("show", err)
	}

	s, tree, err := loadTree(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := tree.Get(id)
	if p == nil {
		exitErr("show", family.ErrNotFound)
	}

	detail := personDetail{
		Person:      *p,
		Parents:     resolveNames(tree, tree.Parents(id)),
		SpouseNames: resolveNames(tree, p.Spouses),
		ChildNames:  resolveNames(tree, tree.AllChildren(id)),
	}
	if !p.BirthDate.IsZero() {
		detail.AgeYears = model.AgeYears(p.BirthDate, p.DeathDate)
	}

	b, _ := json.MarshalIndent(detail, "", "  ")
	fmt.Println(string(b))
}

// resolveNames maps ids to names, skipping any that no longer resolve.
func resolveNames(tree *family.Tree, ids []model.PersonID) []string {
	var names []string
	for _, id := range ids {
		if p := tree.Get(id); p != nil {
			names = append(names, p.Name)
		}
	}
	return names
}
