package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List everyone in the tree",
		Run:   runList,
	}

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	s, tree, err := loadTree(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	people := tree.All()

	if formatFlag == "text" {
		for _, p := range people {
			dates := ""
			switch {
			case !p.DeathDate.IsZero():
				birth := "?"
				if !p.BirthDate.IsZero() {
					birth = fmt.Sprint(p.BirthDate.Year)
				}
				dates = fmt.Sprintf(" (%s - %d)", birth, p.DeathDate.Year)
			case !p.BirthDate.IsZero():
				dates = fmt.Sprintf(" (b. %d)", p.BirthDate.Year)
			}
			fmt.Printf("%d\t%s%s\n", p.ID, p.Name, dates)
		}
		return
	}

	b, _ := json.MarshalIndent(people, "", "  ")
	fmt.Println(string(b))
}
