package family

import "github.com/Andreyhiitola/family-tree-v2/internal/model"

// Parents returns the ids of everyone whose children set claims the given
// person. 0, 1 or 2+ parents are all possible.
func (t *Tree) Parents(id model.PersonID) []model.PersonID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]model.PersonID(nil), t.parents[id]...)
}

// AllChildren returns the person's own children plus the children of every
// current spouse, deduplicated, in first-encountered order. This is the
// step-family rule: a child counts for a person when either that person or
// one of their spouses lists it.
func (t *Tree) AllChildren(id model.PersonID) []model.PersonID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.people[id]
	if !ok {
		return nil
	}
	seen := make(map[model.PersonID]bool)
	var out []model.PersonID
	add := func(ids []model.PersonID) {
		for _, c := range ids {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	add(p.Children)
	for _, s := range p.Spouses {
		if sp, exists := t.people[s]; exists {
			add(sp.Children)
		}
	}
	return out
}

// ChildrenOf returns the people claimed as children by the parent or by
// any of the parent's spouses, deduplicated, in store order. A dangling
// parent id yields nothing.
func (t *Tree) ChildrenOf(parentID model.PersonID) []model.Person {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.childrenOfLocked(parentID)
}

func (t *Tree) childrenOfLocked(parentID model.PersonID) []model.Person {
	parent, ok := t.people[parentID]
	if !ok {
		return nil
	}
	var out []model.Person
	for _, id := range t.order {
		if t.isChildOfLocked(parent, id) {
			out = append(out, *t.people[id].Clone())
		}
	}
	return out
}

func (t *Tree) isChildOfLocked(parent *model.Person, id model.PersonID) bool {
	if parent.HasChild(id) {
		return true
	}
	for _, s := range parent.Spouses {
		if sp, exists := t.people[s]; exists && sp.HasChild(id) {
			return true
		}
	}
	return false
}

// Roots returns everyone not claimed as a child by any record, in store
// order. These are the starting points of the forest.
func (t *Tree) Roots() []model.Person {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rootsLocked()
}

func (t *Tree) rootsLocked() []model.Person {
	var out []model.Person
	for _, id := range t.order {
		if len(t.parents[id]) == 0 {
			out = append(out, *t.people[id].Clone())
		}
	}
	return out
}
