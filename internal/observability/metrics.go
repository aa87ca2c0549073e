package observability

import (
	"fmt"
	"time"
)

// Metrics holds gallery usage metrics derived from the event log.
type Metrics struct {
	ViewsByAgent    map[string]int `json:"views_by_agent"`
	ExportsByFormat map[string]int `json:"exports_by_format"`
	TotalViews      int            `json:"total_views"`
	TotalCopies     int            `json:"total_copies"`
	TotalExports    int            `json:"total_exports"`
	Searches        int            `json:"searches"`
	CatalogLoads    int            `json:"catalog_loads"`
	EventCount      int            `json:"event_count"`
	OldestEvent     *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent     *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives usage metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a new MetricsCalculator that reads from the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them into metrics.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		ViewsByAgent:    make(map[string]int),
		ExportsByFormat: make(map[string]int),
	}

	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case EventAgentViewed:
			m.TotalViews++
			if id, ok := event.Data["agent"].(string); ok {
				m.ViewsByAgent[id]++
			}
		case EventAgentCopied:
			m.TotalCopies++
		case EventAgentExported:
			m.TotalExports++
			if format, ok := event.Data["format"].(string); ok {
				m.ExportsByFormat[format]++
			}
		case EventSearchPerformed:
			m.Searches++
		case EventCatalogLoaded:
			m.CatalogLoads++
		}
	}

	return m, nil
}
