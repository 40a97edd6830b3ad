package models

import "regexp"

// Slug is the human-readable business key used for cross-entity references
// (e.g. "java-fundamentals"). It is distinct from the database row ID and
// stays stable across re-seeding.
type Slug string

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func (s Slug) String() string { return string(s) }

// Valid reports whether the slug is non-empty lowercase kebab-case.
func (s Slug) Valid() bool {
	return len(s) <= 64 && slugPattern.MatchString(string(s))
}
