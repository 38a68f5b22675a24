package family

import "github.com/Andreyhiitola/family-tree-v2/internal/model"

// Node is one person in the derived forest, with children nested under it.
type Node struct {
	Person   model.Person `json:"person"`
	Children []*Node      `json:"children,omitempty"`
}

// BuildForest derives the nested tree structure: one node per root, with
// children attached recursively via the children-or-spouse's-children
// rule. The input is expected to be acyclic; a parent/child loop is
// reported as ErrCycleDetected instead of recursing forever.
func (t *Tree) BuildForest() ([]*Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var forest []*Node
	for _, root := range t.rootsLocked() {
		visiting := make(map[model.PersonID]bool)
		node, err := t.buildNodeLocked(root.ID, visiting)
		if err != nil {
			return nil, err
		}
		forest = append(forest, node)
	}
	return forest, nil
}

func (t *Tree) buildNodeLocked(id model.PersonID, visiting map[model.PersonID]bool) (*Node, error) {
	if visiting[id] {
		return nil, ErrCycleDetected
	}
	visiting[id] = true
	defer delete(visiting, id)

	node := &Node{Person: *t.people[id].Clone()}
	for _, child := range t.childrenOfLocked(id) {
		sub, err := t.buildNodeLocked(child.ID, visiting)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, sub)
	}
	return node, nil
}
