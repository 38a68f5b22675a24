package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func parseIDArg(s string) (model.PersonID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid person id %q", s)
	}
	return model.PersonID(n), nil
}

// parseIDFlag parses a comma separated id list from a flag value.
func parseIDFlag(s string) ([]model.PersonID, error) {
	var out []model.PersonID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := parseIDArg(part)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
