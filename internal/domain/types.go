package domain

import "strings"

// Setting is a single name=value pair from an NVRAM dump.
type Setting struct {
	Name  string
	Value string
}

// Multiline reports whether the value spans more than one line.
func (s Setting) Multiline() bool { return strings.Contains(s.Value, "\n") }

// Dump is an ordered name→value mapping parsed from one dump file.
//
// Duplicate names follow last-write-wins: the value of the last occurrence
// is kept, at the position of the first occurrence.
type Dump struct {
	names  []string
	values map[string]string
}

// NewDump returns an empty Dump.
func NewDump() *Dump {
	return &Dump{values: make(map[string]string)}
}

// Set stores value under name, overwriting any earlier value.
func (d *Dump) Set(name, value string) {
	if _, ok := d.values[name]; !ok {
		d.names = append(d.names, name)
	}
	d.values[name] = value
}

// Get returns the value for name and whether it is present.
func (d *Dump) Get(name string) (string, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Names returns the names in insertion order. The slice is shared; callers
// must not modify it.
func (d *Dump) Names() []string { return d.names }

// Len returns the number of distinct names.
func (d *Dump) Len() int { return len(d.names) }

// Section is a named output bucket with a fixed display rank.
type Section struct {
	Title string
	Rank  int
}

// MatchKind selects how a ClassificationRule matches setting names.
type MatchKind int

const (
	// MatchExact matches a name equal to one of the rule's patterns.
	MatchExact MatchKind = iota
	// MatchPrefix matches a name starting with one of the rule's patterns.
	MatchPrefix
	// MatchNames matches membership in an explicit name set; an alias of
	// MatchExact kept distinct so curated one-off groupings read as data.
	MatchNames
)

// ClassificationRule routes matching setting names to a section title.
// Rules are evaluated in table order; the first match wins.
type ClassificationRule struct {
	Kind     MatchKind
	Patterns []string
	Title    string
}

// Matches reports whether name satisfies the rule.
func (r ClassificationRule) Matches(name string) bool {
	for _, p := range r.Patterns {
		switch r.Kind {
		case MatchPrefix:
			if strings.HasPrefix(name, p) {
				return true
			}
		default: // MatchExact, MatchNames
			if name == p {
				return true
			}
		}
	}
	return false
}

// Change is a differing setting annotated with its resolved section.
type Change struct {
	Setting
	Section Section
}

// Group collects the changes of one section for rendering.
type Group struct {
	Section Section
	Items   []Setting
}
