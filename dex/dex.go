// Package dex holds the creature reference dataset the engine calculates
// against. The engine itself never touches files; this package loads and
// merges the source tables once and then serves read-only lookups by name.
package dex

import (
	"sort"
	"strings"

	pokegpt "github.com/tacowhisperer/pokeGPT"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CreatureRecord is one entry of the reference dataset: everything the
// engine needs to build a battle-ready creature snapshot.
type CreatureRecord struct {
	Name      string
	Types     [2]pokegpt.ElementType
	Abilities []string
	Base      pokegpt.StatBlock
}

// Registry serves name lookups over a fixed set of records. It is built
// once and never written to afterwards, so concurrent reads need no locks.
type Registry struct {
	records map[string]CreatureRecord
	names   []string
}

// NewRegistry indexes records by normalized name. A later record with the
// same normalized name as an earlier one wins, which mirrors how the merge
// step resolves duplicate source rows.
func NewRegistry(records []CreatureRecord) *Registry {
	indexed := make(map[string]CreatureRecord, len(records))
	for _, record := range records {
		indexed[NormalizeName(record.Name)] = record
	}

	names := make([]string, 0, len(indexed))
	for key := range indexed {
		names = append(names, indexed[key].Name)
	}
	sort.Strings(names)

	return &Registry{records: indexed, names: names}
}

// FindByName looks a creature up by its name, ignoring case and padding.
// An absent name comes back as ok == false, never a panic.
func (r *Registry) FindByName(name string) (CreatureRecord, bool) {
	record, ok := r.records[NormalizeName(name)]
	return record, ok
}

// Names lists every registered display name in sorted order.
func (r *Registry) Names() []string {
	return r.names
}

func (r *Registry) Len() int {
	return len(r.records)
}

// NormalizeName maps a creature name onto the key space both source tables
// are joined on: lowercase, trimmed, inner whitespace collapsed to single
// spaces.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// DisplayName renders a normalized name back into title case for output.
func DisplayName(name string) string {
	return titleCaser.String(NormalizeName(name))
}
