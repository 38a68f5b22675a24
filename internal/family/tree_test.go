package family

import (
	"testing"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

func mustAdd(t *testing.T, tree *Tree, p model.Person) model.PersonID {
	t.Helper()
	id, err := tree.Add(p)
	if err != nil {
		t.Fatalf("add %q: %v", p.Name, err)
	}
	return id
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	tree := New()

	a := mustAdd(t, tree, model.Person{Name: "Ivan"})
	b := mustAdd(t, tree, model.Person{Name: "Anna"})

	if a != 1 || b != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", a, b)
	}
}

func TestAddRequiresName(t *testing.T) {
	tree := New()

	if _, err := tree.Add(model.Person{Name: "  "}); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("store mutated by rejected add")
	}
}

func TestAllocatorContinuesFromMax(t *testing.T) {
	tree := Load([]model.Person{
		{ID: 7, Name: "Imported"},
	})

	id := mustAdd(t, tree, model.Person{Name: "Next"})
	if id != 8 {
		t.Errorf("expected id 8 after imported id 7, got %d", id)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	tree := New()
	if p := tree.Get(42); p != nil {
		t.Errorf("expected nil for missing id, got %+v", p)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	tree := New()
	id := mustAdd(t, tree, model.Person{Name: "Ivan"})

	p := tree.Get(id)
	p.Name = "changed"

	if tree.Get(id).Name != "Ivan" {
		t.Error("mutating a returned record changed store state")
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	tree := New()
	mustAdd(t, tree, model.Person{Name: "first"})
	mustAdd(t, tree, model.Person{Name: "second"})
	mustAdd(t, tree, model.Person{Name: "third"})

	all := tree.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for i, want := range []string{"first", "second", "third"} {
		if all[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, all[i].Name)
		}
	}
}

func TestUpdateReplacesFieldsOnly(t *testing.T) {
	tree := New()
	a := mustAdd(t, tree, model.Person{Name: "Ivan"})
	b := mustAdd(t, tree, model.Person{Name: "Anna"})
	if err := tree.SetSpouses(a, []model.PersonID{b}); err != nil {
		t.Fatalf("set spouses: %v", err)
	}

	birth, _ := model.ParseDate("1920-05-15")
	err := tree.Update(a, model.Person{Name: "Ivan Petrovich", BirthDate: birth, Bio: "veteran"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got := tree.Get(a)
	if got.Name != "Ivan Petrovich" || got.Bio != "veteran" {
		t.Errorf("fields not replaced: %+v", got)
	}
	if !got.HasSpouse(b) {
		t.Error("update touched the spouse set")
	}
}

func TestUpdateMissing(t *testing.T) {
	tree := New()
	if err := tree.Update(5, model.Person{Name: "nobody"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	tree := New()
	mustAdd(t, tree, model.Person{Name: "Ivan Petrovich"})
	mustAdd(t, tree, model.Person{Name: "Anna Sergeevna"})
	mustAdd(t, tree, model.Person{Name: "Maria Ivanovna"})

	got := tree.Search("ivan")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for 'ivan', got %d", len(got))
	}
	if got[0].Name != "Ivan Petrovich" || got[1].Name != "Maria Ivanovna" {
		t.Errorf("unexpected matches: %v, %v", got[0].Name, got[1].Name)
	}

	if got := tree.Search(""); got != nil {
		t.Errorf("empty query should match nothing, got %d", len(got))
	}
}

func TestLoadSkipsDuplicateIDs(t *testing.T) {
	tree := Load([]model.Person{
		{ID: 1, Name: "first"},
		{ID: 1, Name: "dup"},
	})

	if tree.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", tree.Len())
	}
	if tree.Get(1).Name != "first" {
		t.Errorf("expected first record to win, got %q", tree.Get(1).Name)
	}
}
