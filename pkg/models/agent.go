// Package models contains the shared data types for the agent gallery:
// catalog records, filter state, and configuration.
package models

// Agent is a single catalog entry: a curated agent template with its
// metadata and the full long-form prompt body. Entries are immutable
// after the catalog is loaded.
type Agent struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Domains []string `json:"domains" yaml:"domains"`
	Summary string   `json:"summary" yaml:"summary"`
	Tools   []string `json:"tools" yaml:"tools"`
	Tags    []string `json:"tags" yaml:"tags"`
	Body    string   `json:"body" yaml:"body"`
}

// DomainAll is the sentinel domain selector meaning "no domain filter".
const DomainAll = "all"

// FilterState is the session-local selection driving the catalog filter:
// a free-text query, a conjunctive set of required tags, and a single
// domain selector. The zero value is the default state (everything visible).
type FilterState struct {
	Query        string
	RequiredTags []string
	Domain       string
}

// DefaultFilterState returns the state used when a view is first shown:
// empty query, no required tags, domain "all".
func DefaultFilterState() FilterState {
	return FilterState{Domain: DomainAll}
}

// IsDefault reports whether the state selects the full catalog.
func (s FilterState) IsDefault() bool {
	return s.Query == "" && len(s.RequiredTags) == 0 &&
		(s.Domain == "" || s.Domain == DomainAll)
}

// Equal reports whether two filter states are the same selection.
// An empty Domain is equivalent to DomainAll.
func (s FilterState) Equal(other FilterState) bool {
	if s.Query != other.Query {
		return false
	}
	if normalizeDomain(s.Domain) != normalizeDomain(other.Domain) {
		return false
	}
	if len(s.RequiredTags) != len(other.RequiredTags) {
		return false
	}
	for i, t := range s.RequiredTags {
		if other.RequiredTags[i] != t {
			return false
		}
	}
	return true
}

func normalizeDomain(d string) string {
	if d == "" {
		return DomainAll
	}
	return d
}
