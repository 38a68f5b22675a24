package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
	"github.com/Andreyhiitola/family-tree-v2/internal/geo"
)

type resolvedPlace struct {
	family.Place
	Coord *geo.Coord `json:"coord,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Group people by birth place",
		Long:  "Group people by birth place. With --resolve each place is geocoded through OpenStreetMap Nominatim; places it cannot find stay unresolved.",
		Run:   runPlaces,
	}

	cmd.Flags().Bool("resolve", false, "Geocode places to coordinates")

	RootCmd.AddCommand(cmd)
}

func runPlaces(cmd *cobra.Command, args []string) {
	resolve, _ := cmd.Flags().GetBool("resolve")

	ctx := cmd.Context()
	s, tree, err := loadTree(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	places := tree.Places()
	out := make([]resolvedPlace, 0, len(places))

	var client *geo.Client
	if resolve {
		client = geo.NewClient(loadConfig().GeocoderURL, newLogger())
	}

	for _, place := range places {
		rp := resolvedPlace{Place: place}
		if client != nil {
			coord, err := client.Geocode(ctx, place.Name)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: geocode %q: %v\n", place.Name, err)
			} else {
				rp.Coord = coord
			}
		}
		out = append(out, rp)
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
