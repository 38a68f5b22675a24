package family

import (
	"fmt"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

// Stats are aggregate figures derived from the current graph.
type Stats struct {
	TotalPeople int    `json:"totalPeople"`
	Generations int    `json:"generations"`
	Males       int    `json:"males"`
	Females     int    `json:"females"`
	TotalPhotos int    `json:"totalPhotos"`
	Marriages   int    `json:"marriages"`
	OldestName  string `json:"oldestPerson,omitempty"`
	OldestAge   int    `json:"oldestAgeYears,omitempty"`
}

// Stats computes the aggregate figures. Generation depth follows the same
// children-or-spouse's-children rule as the forest and fails on cyclic
// input.
func (t *Tree) Stats() (*Stats, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	st := &Stats{TotalPeople: len(t.people)}

	gens, err := t.generationsLocked()
	if err != nil {
		return nil, fmt.Errorf("generation depth: %w", err)
	}
	st.Generations = gens

	// Marriages: each symmetric link stored twice, so count canonical
	// unordered pairs.
	pairs := make(map[[2]model.PersonID]bool)
	for _, id := range t.order {
		p := t.people[id]

		switch p.Gender {
		case model.GenderMale:
			st.Males++
		case model.GenderFemale:
			st.Females++
		}
		st.TotalPhotos += len(p.Photos)

		for _, s := range p.Spouses {
			key := [2]model.PersonID{p.ID, s}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			pairs[key] = true
		}

		if !p.BirthDate.IsZero() {
			age := model.AgeYears(p.BirthDate, p.DeathDate)
			if age > st.OldestAge {
				st.OldestAge = age
				st.OldestName = p.Name
			}
		}
	}
	st.Marriages = len(pairs)
	return st, nil
}

// Generations returns the longest root-to-leaf chain length. A leaf has
// depth 1; an empty store counts as a single generation.
func (t *Tree) Generations() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.generationsLocked()
}

func (t *Tree) generationsLocked() (int, error) {
	roots := t.rootsLocked()
	if len(roots) == 0 {
		return 1, nil
	}
	max := 1
	for _, root := range roots {
		visiting := make(map[model.PersonID]bool)
		d, err := t.depthLocked(root.ID, visiting)
		if err != nil {
			return 0, err
		}
		if d > max {
			max = d
		}
	}
	return max, nil
}

func (t *Tree) depthLocked(id model.PersonID, visiting map[model.PersonID]bool) (int, error) {
	if visiting[id] {
		return 0, ErrCycleDetected
	}
	visiting[id] = true
	defer delete(visiting, id)

	max := 1
	for _, child := range t.childrenOfLocked(id) {
		d, err := t.depthLocked(child.ID, visiting)
		if err != nil {
			return 0, err
		}
		if d+1 > max {
			max = d + 1
		}
	}
	return max, nil
}
