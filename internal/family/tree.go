// Package family implements the in-memory relationship graph: the person
// store, the bidirectional spouse/parent link maintenance, tree derivation
// and aggregate statistics.
//
// All mutations run inside a single writer critical section, so a derived
// read never observes a half-updated graph.
package family

import (
	"strings"
	"sync"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

// Tree owns the collection of person records. Everything else holds ids
// and re-resolves through the tree.
type Tree struct {
	mu      sync.RWMutex
	people  map[model.PersonID]*model.Person
	order   []model.PersonID                     // insertion order, for stable display
	parents map[model.PersonID][]model.PersonID // child id -> parent ids, kept in sync with children sets
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		people:  make(map[model.PersonID]*model.Person),
		parents: make(map[model.PersonID][]model.PersonID),
	}
}

// Load builds a tree from previously saved records, replacing nothing
// incrementally: the whole collection becomes the tree state in one step.
// Dangling child/spouse references are kept as-is and tolerated at read
// time.
func Load(people []model.Person) *Tree {
	t := New()
	for i := range people {
		p := people[i].Clone()
		if p.ID <= 0 {
			p.ID = t.nextID()
		}
		if _, dup := t.people[p.ID]; dup {
			continue
		}
		t.people[p.ID] = p
		t.order = append(t.order, p.ID)
	}
	t.reindexParents()
	return t
}

// Add stores a new person and returns its assigned id. Children start
// empty; spouse links passed in Spouses are established symmetrically.
func (t *Tree) Add(p model.Person) (model.PersonID, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, ErrNameRequired
	}
	if !model.ValidGenders[p.Gender] {
		p.Gender = model.GenderUnset
	}
	spouses := p.Spouses

	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID()
	rec := p.Clone()
	rec.ID = id
	rec.Children = nil
	rec.Spouses = nil
	t.people[id] = rec
	t.order = append(t.order, id)

	if len(spouses) > 0 {
		if err := t.setSpousesLocked(id, spouses); err != nil {
			// Roll back the insert so a validation error leaves the
			// store untouched.
			delete(t.people, id)
			t.order = t.order[:len(t.order)-1]
			return 0, err
		}
	}
	return id, nil
}

// Get returns a copy of the record, or nil when the id does not resolve.
func (t *Tree) Get(id model.PersonID) *model.Person {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.people[id]
	if !ok {
		return nil
	}
	return p.Clone()
}

// Update replaces the person's descriptive fields in place. Relationship
// fields are not touched here: spouse and parent changes go through
// SetSpouses and SetParents so back-links stay consistent.
func (t *Tree) Update(id model.PersonID, fields model.Person) error {
	if strings.TrimSpace(fields.Name) == "" {
		return ErrNameRequired
	}
	if !model.ValidGenders[fields.Gender] {
		fields.Gender = model.GenderUnset
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.people[id]
	if !ok {
		return ErrNotFound
	}
	p.Name = fields.Name
	p.Gender = fields.Gender
	p.BirthDate = fields.BirthDate
	p.DeathDate = fields.DeathDate
	p.BirthPlace = fields.BirthPlace
	p.Bio = fields.Bio
	p.Events = fields.Events
	p.Photos = append([]string(nil), fields.Photos...)
	p.AudioRef = fields.AudioRef
	p.VideoRef = fields.VideoRef
	return nil
}

// All returns a snapshot of every record in insertion order.
func (t *Tree) All() []model.Person {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]model.Person, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.people[id].Clone())
	}
	return out
}

// Len returns the number of records.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.people)
}

// Search returns people whose name contains the query, case-insensitively,
// in insertion order.
func (t *Tree) Search(query string) []model.Person {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []model.Person
	for _, id := range t.order {
		p := t.people[id]
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, *p.Clone())
		}
	}
	return out
}

// nextID allocates max(existing)+1, starting at 1. Caller holds the lock
// (or owns the tree exclusively during Load).
func (t *Tree) nextID() model.PersonID {
	var max model.PersonID
	for id := range t.people {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// reindexParents rebuilds the child -> parents index from children sets.
// Used only at load time; mutations maintain the index incrementally.
func (t *Tree) reindexParents() {
	t.parents = make(map[model.PersonID][]model.PersonID)
	for _, id := range t.order {
		for _, child := range t.people[id].Children {
			t.parents[child] = append(t.parents[child], id)
		}
	}
}
