package observability

import (
	"testing"
	"time"
)

func TestCalculate_AggregatesByType(t *testing.T) {
	log := newTestLog(t)

	Record(log, EventAgentViewed, map[string]any{"agent": "code-reviewer"})
	Record(log, EventAgentViewed, map[string]any{"agent": "code-reviewer"})
	Record(log, EventAgentViewed, map[string]any{"agent": "debugger"})
	Record(log, EventAgentCopied, map[string]any{"agent": "debugger"})
	Record(log, EventAgentExported, map[string]any{"agent": "debugger", "format": "markdown"})
	Record(log, EventAgentExported, map[string]any{"agent": "debugger", "format": "json"})
	Record(log, EventSearchPerformed, map[string]any{"query": "sec"})
	Record(log, EventCatalogLoaded, map[string]any{"agents": 3})

	mc := NewMetricsCalculator(log)
	m, err := mc.Calculate(time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if m.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", m.TotalViews)
	}
	if m.ViewsByAgent["code-reviewer"] != 2 {
		t.Errorf("ViewsByAgent[code-reviewer] = %d, want 2", m.ViewsByAgent["code-reviewer"])
	}
	if m.TotalCopies != 1 {
		t.Errorf("TotalCopies = %d, want 1", m.TotalCopies)
	}
	if m.TotalExports != 2 {
		t.Errorf("TotalExports = %d, want 2", m.TotalExports)
	}
	if m.ExportsByFormat["markdown"] != 1 || m.ExportsByFormat["json"] != 1 {
		t.Errorf("ExportsByFormat = %v", m.ExportsByFormat)
	}
	if m.Searches != 1 {
		t.Errorf("Searches = %d, want 1", m.Searches)
	}
	if m.CatalogLoads != 1 {
		t.Errorf("CatalogLoads = %d, want 1", m.CatalogLoads)
	}
	if m.EventCount != 8 {
		t.Errorf("EventCount = %d, want 8", m.EventCount)
	}
	if m.OldestEvent == nil || m.NewestEvent == nil {
		t.Error("event time bounds not set")
	}
}

func TestCalculate_WindowExcludesOldEvents(t *testing.T) {
	log := newTestLog(t)

	old := Event{
		Time:  time.Now().UTC().Add(-72 * time.Hour),
		Level: "INFO",
		Type:  EventAgentViewed,
		Data:  map[string]any{"agent": "ancient"},
	}
	if err := log.Write(old); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	Record(log, EventAgentViewed, map[string]any{"agent": "recent"})

	mc := NewMetricsCalculator(log)
	m, err := mc.Calculate(time.Now().UTC().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if m.TotalViews != 1 {
		t.Errorf("TotalViews = %d, want 1", m.TotalViews)
	}
	if _, ok := m.ViewsByAgent["ancient"]; ok {
		t.Error("event outside the window was counted")
	}
}

func TestCalculate_EmptyLog(t *testing.T) {
	log := newTestLog(t)

	mc := NewMetricsCalculator(log)
	m, err := mc.Calculate(time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if m.EventCount != 0 {
		t.Errorf("EventCount = %d, want 0", m.EventCount)
	}
	if m.OldestEvent != nil || m.NewestEvent != nil {
		t.Error("time bounds set for an empty log")
	}
}
