package core

import (
	"reflect"
	"strings"
	"testing"

	"github.com/valter-silva-au/agent-gallery/pkg/models"
	"pgregory.net/rapid"
)

// Feature: agent-gallery, Property: Textual Export Round-Trips
// Parsing an exported agent recovers the id, summary, tools, and the
// whitespace-trimmed body.
func TestProperty_ExportTextRoundTrips(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		agent := models.Agent{
			ID:      rapid.StringMatching(`[a-z]{1,10}(-[a-z]{1,10})?`).Draw(rt, "id"),
			Summary: rapid.StringMatching(`[a-zA-Z0-9 .,]{0,40}`).Draw(rt, "summary"),
			Tools:   rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{1,8}`), 0, 4).Draw(rt, "tools"),
			Body:    rapid.StringMatching(`[a-zA-Z0-9 .,#\n-]{0,80}`).Draw(rt, "body"),
		}

		content, err := ExportText(agent)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		parsed, err := ParseExport(content)
		if err != nil {
			t.Fatalf("parse failed for %q: %v", content, err)
		}

		if parsed.ID != agent.ID {
			t.Fatalf("ID = %q, want %q", parsed.ID, agent.ID)
		}
		if parsed.Summary != agent.Summary {
			t.Fatalf("Summary = %q, want %q", parsed.Summary, agent.Summary)
		}
		if len(parsed.Tools) != len(agent.Tools) || (len(agent.Tools) > 0 && !reflect.DeepEqual(parsed.Tools, agent.Tools)) {
			t.Fatalf("Tools = %v, want %v", parsed.Tools, agent.Tools)
		}
		if parsed.Body != strings.TrimSpace(agent.Body) {
			t.Fatalf("Body = %q, want %q", parsed.Body, strings.TrimSpace(agent.Body))
		}
	})
}

// Feature: agent-gallery, Property: Export Is Deterministic
// Exporting the same agent twice yields byte-identical output.
func TestProperty_ExportIsDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		agent := models.Agent{
			ID:      rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "id"),
			Summary: rapid.StringMatching(`[a-z ]{0,30}`).Draw(rt, "summary"),
			Tools:   rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{1,6}`), 0, 3).Draw(rt, "tools"),
			Body:    rapid.StringMatching(`[a-z \n]{0,40}`).Draw(rt, "body"),
		}

		a, err := ExportText(agent)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		b, err := ExportText(agent)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if a != b {
			t.Fatalf("exports differ:\n%q\n%q", a, b)
		}
	})
}
