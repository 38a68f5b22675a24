package family

import "github.com/Andreyhiitola/family-tree-v2/internal/model"

// SetSpouses replaces the person's spouse set with newSpouses and keeps
// the symmetric back-links consistent: links to spouses no longer listed
// are broken on both sides, new ones are established on both sides.
//
// Duplicate ids are collapsed and ids that do not resolve are dropped.
// A self-reference is a validation error and nothing is mutated.
func (t *Tree) SetSpouses(id model.PersonID, newSpouses []model.PersonID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setSpousesLocked(id, newSpouses)
}

func (t *Tree) setSpousesLocked(id model.PersonID, newSpouses []model.PersonID) error {
	// Validate before touching anything.
	for _, s := range newSpouses {
		if s == id {
			return ErrSelfSpouse
		}
	}
	p, ok := t.people[id]
	if !ok {
		return ErrNotFound
	}

	seen := make(map[model.PersonID]bool, len(newSpouses))
	next := make([]model.PersonID, 0, len(newSpouses))
	for _, s := range newSpouses {
		if seen[s] {
			continue
		}
		seen[s] = true
		if _, exists := t.people[s]; !exists {
			continue // dangling id, dropped
		}
		next = append(next, s)
	}

	// Break links removed from the set.
	for _, old := range p.Spouses {
		if seen[old] {
			continue
		}
		if sp, exists := t.people[old]; exists {
			sp.Spouses = removeID(sp.Spouses, id)
		}
	}

	// Establish links newly present.
	for _, s := range next {
		sp := t.people[s]
		if !sp.HasSpouse(id) {
			sp.Spouses = append(sp.Spouses, id)
		}
	}

	p.Spouses = next
	return nil
}

// SetParents replaces the child's parentage. Every prior parent loses the
// child from its children set, then each id in parentIds gains it.
// Duplicates are collapsed and dangling ids dropped; the manager imposes
// no cap on the number of parents.
func (t *Tree) SetParents(childID model.PersonID, parentIDs []model.PersonID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.people[childID]; !ok {
		return ErrNotFound
	}

	// Clear old parentage through the index, so no stale parent keeps
	// the link even if the caller does not know the prior parent set.
	for _, old := range t.parents[childID] {
		if parent, exists := t.people[old]; exists {
			parent.Children = removeID(parent.Children, childID)
		}
	}
	delete(t.parents, childID)

	seen := make(map[model.PersonID]bool, len(parentIDs))
	for _, pid := range parentIDs {
		if seen[pid] || pid == childID {
			continue
		}
		seen[pid] = true
		parent, exists := t.people[pid]
		if !exists {
			continue
		}
		if !parent.HasChild(childID) {
			parent.Children = append(parent.Children, childID)
		}
		t.parents[childID] = append(t.parents[childID], pid)
	}
	return nil
}

// Remove deletes the person after cleaning up every link that points at
// them: spouse back-links, children sets of all parents, and the parent
// index. The whole cleanup runs under the write lock, so no reader sees a
// half-cleaned graph.
func (t *Tree) Remove(id model.PersonID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.people[id]
	if !ok {
		return ErrNotFound
	}

	for _, s := range p.Spouses {
		if sp, exists := t.people[s]; exists {
			sp.Spouses = removeID(sp.Spouses, id)
		}
	}

	for _, other := range t.people {
		if other.HasChild(id) {
			other.Children = removeID(other.Children, id)
		}
	}

	// The removed person is gone both as a child and as a parent.
	delete(t.parents, id)
	for child, ps := range t.parents {
		t.parents[child] = removeID(ps, id)
		if len(t.parents[child]) == 0 {
			delete(t.parents, child)
		}
	}

	delete(t.people, id)
	t.order = removeID(t.order, id)
	return nil
}

func removeID(ids []model.PersonID, id model.PersonID) []model.PersonID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
