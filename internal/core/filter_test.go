package core

import (
	"reflect"
	"testing"

	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// --- Fixtures ---

func sampleAgents() []models.Agent {
	return []models.Agent{
		{
			ID:      "code-reviewer",
			Title:   "Code Reviewer",
			Domains: []string{"coding"},
			Summary: "Reviews pull requests for correctness and style",
			Tools:   []string{"Read", "Grep"},
			Tags:    []string{"review", "quality"},
			Body:    "You review code.",
		},
		{
			ID:      "debugger",
			Title:   "Debugger",
			Domains: []string{"troubleshooting"},
			Summary: "Tracks down the root cause of failures",
			Tools:   []string{"Bash", "Read"},
			Tags:    []string{"debug", "analysis"},
			Body:    "You debug programs.",
		},
		{
			ID:      "security-auditor",
			Title:   "Security Auditor",
			Domains: []string{"security"},
			Summary: "Audits code for vulnerabilities",
			Tools:   []string{"Grep", "Read"},
			Tags:    []string{"security", "audit"},
			Body:    "You audit code.",
		},
	}
}

func visibleIDs(agents []models.Agent) []string {
	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = a.ID
	}
	return ids
}

// --- FilterAgents tests ---

func TestFilterAgents_DefaultStateReturnsAll(t *testing.T) {
	agents := sampleAgents()
	result := FilterAgents(agents, models.DefaultFilterState())

	if len(result) != len(agents) {
		t.Fatalf("got %d agents, want %d", len(result), len(agents))
	}
	if !reflect.DeepEqual(visibleIDs(result), visibleIDs(agents)) {
		t.Errorf("order changed: got %v", visibleIDs(result))
	}
}

func TestFilterAgents_QueryMatchesCaseInsensitively(t *testing.T) {
	state := models.DefaultFilterState()
	state.Query = "SEC"

	result := FilterAgents(sampleAgents(), state)
	if got := visibleIDs(result); !reflect.DeepEqual(got, []string{"security-auditor"}) {
		t.Errorf("query %q matched %v, want [security-auditor]", state.Query, got)
	}
}

func TestFilterAgents_QueryMatchesTitleSummaryOrTag(t *testing.T) {
	agents := []models.Agent{
		{ID: "by-title", Title: "Needle Finder", Summary: "x", Tags: []string{"a"}},
		{ID: "by-summary", Title: "x", Summary: "finds the needle", Tags: []string{"b"}},
		{ID: "by-tag", Title: "x", Summary: "y", Tags: []string{"needle"}},
		{ID: "no-match", Title: "x", Summary: "y", Tags: []string{"z"}},
	}
	state := models.DefaultFilterState()
	state.Query = "needle"

	result := FilterAgents(agents, state)
	want := []string{"by-title", "by-summary", "by-tag"}
	if got := visibleIDs(result); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilterAgents_RequiredTagSelectsRecordsCarryingIt(t *testing.T) {
	state := models.DefaultFilterState()
	state.RequiredTags = []string{"review"}

	result := FilterAgents(sampleAgents(), state)
	if got := visibleIDs(result); !reflect.DeepEqual(got, []string{"code-reviewer"}) {
		t.Errorf("got %v, want [code-reviewer]", got)
	}
}

func TestFilterAgents_RequiredTagsAreConjunctive(t *testing.T) {
	state := models.DefaultFilterState()
	state.RequiredTags = []string{"review", "debug"}

	result := FilterAgents(sampleAgents(), state)
	if len(result) != 0 {
		t.Errorf("no agent carries both tags, got %v", visibleIDs(result))
	}
}

func TestFilterAgents_TagMatchIsCaseSensitive(t *testing.T) {
	state := models.DefaultFilterState()
	state.RequiredTags = []string{"Review"}

	result := FilterAgents(sampleAgents(), state)
	if len(result) != 0 {
		t.Errorf("tag %q should not match lowercase tags, got %v", "Review", visibleIDs(result))
	}
}

func TestFilterAgents_DomainSelection(t *testing.T) {
	state := models.DefaultFilterState()
	state.Domain = "troubleshooting"

	result := FilterAgents(sampleAgents(), state)
	if got := visibleIDs(result); !reflect.DeepEqual(got, []string{"debugger"}) {
		t.Errorf("got %v, want [debugger]", got)
	}
}

func TestFilterAgents_DomainAllAndEmptyAreEquivalent(t *testing.T) {
	agents := sampleAgents()

	all := FilterAgents(agents, models.FilterState{Domain: models.DomainAll})
	empty := FilterAgents(agents, models.FilterState{Domain: ""})

	if !reflect.DeepEqual(visibleIDs(all), visibleIDs(empty)) {
		t.Errorf("sentinel and empty domain differ: %v vs %v", visibleIDs(all), visibleIDs(empty))
	}
	if len(all) != len(agents) {
		t.Errorf("domain %q filtered records out: %v", models.DomainAll, visibleIDs(all))
	}
}

func TestFilterAgents_CombinedFiltersCanEmpty(t *testing.T) {
	state := models.FilterState{
		Query:        "sec",
		RequiredTags: []string{"debug"},
		Domain:       "coding",
	}

	result := FilterAgents(sampleAgents(), state)
	if len(result) != 0 {
		t.Errorf("contradictory filters matched %v", visibleIDs(result))
	}
}

func TestFilterAgents_DoesNotMutateInput(t *testing.T) {
	agents := sampleAgents()
	before := make([]models.Agent, len(agents))
	copy(before, agents)

	state := models.FilterState{Query: "debug", RequiredTags: []string{"debug"}, Domain: "troubleshooting"}
	FilterAgents(agents, state)

	if !reflect.DeepEqual(agents, before) {
		t.Error("input slice was mutated")
	}
}

func TestFilterAgents_EmptyCatalog(t *testing.T) {
	result := FilterAgents(nil, models.FilterState{Query: "anything"})
	if len(result) != 0 {
		t.Errorf("got %d results from an empty catalog", len(result))
	}
}

// --- Universe tests ---

func TestTagUniverse_DistinctSorted(t *testing.T) {
	agents := sampleAgents()
	agents = append(agents, models.Agent{ID: "dup", Tags: []string{"review", "audit"}})

	got := TagUniverse(agents)
	want := []string{"analysis", "audit", "debug", "quality", "review", "security"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagUniverse = %v, want %v", got, want)
	}
}

func TestDomainUniverse_DistinctSorted(t *testing.T) {
	got := DomainUniverse(sampleAgents())
	want := []string{"coding", "security", "troubleshooting"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DomainUniverse = %v, want %v", got, want)
	}
}

func TestUniverses_EmptyCatalog(t *testing.T) {
	if got := TagUniverse(nil); len(got) != 0 {
		t.Errorf("TagUniverse(nil) = %v, want empty", got)
	}
	if got := DomainUniverse(nil); len(got) != 0 {
		t.Errorf("DomainUniverse(nil) = %v, want empty", got)
	}
}
