package domain

// DumpParser turns raw dump text into an ordered Dump.
type DumpParser interface {
	Parse(text string) (*Dump, error)
}

// Differ reports the settings in current that differ from, or are absent
// in, defaults, preserving current's insertion order.
type Differ interface {
	Diff(current, defaults *Dump) []Setting
}

// Classifier resolves every setting name to exactly one section.
type Classifier interface {
	Classify(name string) Section
	// Ignored reports names that must never appear as nvram set lines.
	Ignored(name string) bool
	// Sections lists all known sections in rank order.
	Sections() []Section
}

// Renderer produces the replay script from classified changes, reporting
// how many settings were written as nvram set lines.
type Renderer interface {
	Render(changes []Change) (text string, count int)
}

// Workspace reads dump files and writes the generated script.
type Workspace interface {
	ReadDump(path string) (string, error)
	WriteScript(path string, text string) error
}
