// Package section assigns NVRAM setting names to display sections.
//
// The assignment is data-driven: an ordered rule table routes names to
// sections by exact match, prefix match, or membership in a curated name
// set. The first matching rule wins and unmatched names fall into the
// trailing "Other" section, so classification is total. The table is the
// place to edit when new firmware keys appear; the algorithm never changes.
package section
