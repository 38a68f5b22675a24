// Package model defines the core person data types.
package model

// PersonID identifies a person record. IDs are positive, assigned by the
// tree (max existing + 1) and never reused within a session.
type PersonID int

// Gender of a person. Empty means unset.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ValidGenders are the accepted gender values, including unset.
var ValidGenders = map[Gender]bool{
	GenderUnset:  true,
	GenderMale:   true,
	GenderFemale: true,
}

// Person is a single family-tree record. Parent links are stored one-way:
// a parent lists its children, there is no parents field. Spouse links are
// symmetric and kept consistent by family.Tree.
//
// Photos, AudioRef and VideoRef hold opaque references (blob ids or URLs),
// never the media bytes themselves.
type Person struct {
	ID         PersonID   `json:"id"`
	Name       string     `json:"name"`
	Gender     Gender     `json:"gender,omitempty"`
	BirthDate  Date       `json:"birthDate,omitzero"`
	DeathDate  Date       `json:"deathDate,omitzero"`
	BirthPlace string     `json:"birthPlace,omitempty"`
	Bio        string     `json:"bio,omitempty"`
	Events     string     `json:"events,omitempty"`
	Photos     []string   `json:"photos,omitempty"`
	AudioRef   string     `json:"audioUrl,omitempty"`
	VideoRef   string     `json:"videoUrl,omitempty"`
	Children   []PersonID `json:"children"`
	Spouses    []PersonID `json:"spouses,omitempty"`
}

// HasChild reports whether the person's own children list contains id.
func (p *Person) HasChild(id PersonID) bool {
	for _, c := range p.Children {
		if c == id {
			return true
		}
	}
	return false
}

// HasSpouse reports whether the person's spouse list contains id.
func (p *Person) HasSpouse(id PersonID) bool {
	for _, s := range p.Spouses {
		if s == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the person. Callers outside the tree get
// copies so they can never hold a stale pointer across mutations.
func (p *Person) Clone() *Person {
	cp := *p
	cp.Photos = append([]string(nil), p.Photos...)
	cp.Children = append([]PersonID(nil), p.Children...)
	cp.Spouses = append([]PersonID(nil), p.Spouses...)
	return &cp
}
