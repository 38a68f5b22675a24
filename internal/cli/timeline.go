package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show family events by year",
		Long:  "Show births, deaths and dated life events grouped by year, newest first. Event lines must start with a 4-digit year, e.g. \"1941 - Drafted\".",
		Run:   runTimeline,
	}

	RootCmd.AddCommand(cmd)
}

func runTimeline(cmd *cobra.Command, args []string) {
	s, tree, err := loadTree(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	timeline := tree.Timeline()

	if formatFlag == "text" {
		for _, year := range timeline {
			fmt.Printf("%d\n", year.Year)
			for _, ev := range year.Events {
				fmt.Printf("  %s: %s\n", ev.Person, ev.Event)
			}
		}
		return
	}

	b, _ := json.MarshalIndent(timeline, "", "  ")
	fmt.Println(string(b))
}
