// Package core contains the business logic for the agent gallery:
// catalog filtering, export serialization, configuration, and the
// shared presentation mappings.
package core

import (
	"sort"
	"strings"

	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// FilterAgents returns the subsequence of agents matching the given filter
// state, preserving the original relative order. A record matches when all
// three predicates hold:
//
//   - the query is empty, or is a case-insensitive substring of the title,
//     the summary, or at least one tag;
//   - every required tag is present on the record (exact, case-sensitive);
//   - the domain selector is "all" (or empty), or the record carries that
//     exact domain.
//
// The function is pure: it never mutates its inputs and never fails, so it
// is safe to call on every keystroke.
func FilterAgents(agents []models.Agent, state models.FilterState) []models.Agent {
	result := make([]models.Agent, 0, len(agents))
	query := strings.ToLower(state.Query)
	for _, a := range agents {
		if !matchesQuery(a, query) {
			continue
		}
		if !hasAllTags(a.Tags, state.RequiredTags) {
			continue
		}
		if !matchesDomain(a.Domains, state.Domain) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// matchesQuery checks the broad text predicate: title OR summary OR any tag.
// query must already be lowercased.
func matchesQuery(a models.Agent, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), query) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// hasAllTags checks the conjunctive tag predicate: every required tag must
// appear in the record's tags with an exact match.
func hasAllTags(tags, required []string) bool {
	for _, req := range required {
		found := false
		for _, t := range tags {
			if t == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesDomain(domains []string, selected string) bool {
	if selected == "" || selected == models.DomainAll {
		return true
	}
	for _, d := range domains {
		if d == selected {
			return true
		}
	}
	return false
}

// TagUniverse returns the distinct tags across all agents, sorted ascending.
func TagUniverse(agents []models.Agent) []string {
	return distinctSorted(agents, func(a models.Agent) []string { return a.Tags })
}

// DomainUniverse returns the distinct domains across all agents, sorted ascending.
func DomainUniverse(agents []models.Agent) []string {
	return distinctSorted(agents, func(a models.Agent) []string { return a.Domains })
}

func distinctSorted(agents []models.Agent, field func(models.Agent) []string) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, a := range agents {
		for _, v := range field(a) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	sort.Strings(result)
	return result
}
