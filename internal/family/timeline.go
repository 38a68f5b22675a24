package family

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// TimelineEvent is one dated entry attributed to a person.
type TimelineEvent struct {
	Person string `json:"person"`
	Event  string `json:"event"`
}

// TimelineYear groups the events of a single year.
type TimelineYear struct {
	Year   int             `json:"year"`
	Events []TimelineEvent `json:"events"`
}

// Event lines look like "1941 - Drafted". Lines without a leading 4-digit
// year are left in the raw events text but never reach the timeline.
var eventLineRe = regexp.MustCompile(`^(\d{4})\s*-\s*(.+)`)

// Timeline derives dated events from the graph: one entry per known birth
// date, one per known death date, and one per parseable events line.
// Years are sorted descending; within a year events keep encounter order.
func (t *Tree) Timeline() []TimelineYear {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byYear := make(map[int][]TimelineEvent)
	add := func(year int, name, event string) {
		byYear[year] = append(byYear[year], TimelineEvent{Person: name, Event: event})
	}

	for _, id := range t.order {
		p := t.people[id]
		if !p.BirthDate.IsZero() {
			add(p.BirthDate.Year, p.Name, "born")
		}
		if !p.DeathDate.IsZero() {
			add(p.DeathDate.Year, p.Name, "died")
		}
		for _, line := range strings.Split(p.Events, "\n") {
			m := eventLineRe.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			year, _ := strconv.Atoi(m[1])
			add(year, p.Name, m[2])
		}
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	out := make([]TimelineYear, 0, len(years))
	for _, y := range years {
		out = append(out, TimelineYear{Year: y, Events: byYear[y]})
	}
	return out
}

// Place groups the people born in one free-text location.
type Place struct {
	Name   string   `json:"place"`
	People []string `json:"people"`
}

// Places groups people by birth place, ordered by first appearance.
func (t *Tree) Places() []Place {
	t.mu.RLock()
	defer t.mu.RUnlock()

	index := make(map[string]int)
	var out []Place
	for _, id := range t.order {
		p := t.people[id]
		if p.BirthPlace == "" {
			continue
		}
		i, ok := index[p.BirthPlace]
		if !ok {
			i = len(out)
			index[p.BirthPlace] = i
			out = append(out, Place{Name: p.BirthPlace})
		}
		out[i].People = append(out[i].People, p.Name)
	}
	return out
}
