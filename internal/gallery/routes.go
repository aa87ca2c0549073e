package gallery

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// indexPage is the single-page gallery client served at /.
//
//go:embed web/index.html
var indexPage []byte

// registerRoutes sets up all HTTP routes on the server mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/agents", s.handleListAgents)
	mux.HandleFunc("GET /api/agents/{id}", s.handleGetAgent)
	mux.HandleFunc("GET /api/agents/{id}/export", s.handleExportAgent)
	mux.HandleFunc("GET /api/tags", s.handleTags)
	mux.HandleFunc("GET /api/domains", s.handleDomains)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("/", handleNotFound)
}

// agentSummary is the list-view projection of an agent: everything except
// the long-form body, plus the style classes for its domains.
type agentSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Domains      []string `json:"domains"`
	Summary      string   `json:"summary"`
	Tools        []string `json:"tools"`
	Tags         []string `json:"tags"`
	DomainStyles []string `json:"domain_styles"`
}

// agentDetail is the full detail-view payload.
type agentDetail struct {
	agentSummary
	Body      string            `json:"body"`
	ToolIcons map[string]string `json:"tool_icons"`
}

type listAgentsResponse struct {
	Agents []agentSummary `json:"agents"`
	Count  int            `json:"count"`
	Total  int            `json:"total"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Agents  int    `json:"agents"`
}

type domainEntry struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: s.version,
		Agents:  len(s.catalog.Agents()),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}

// handleListAgents returns the filtered catalog. Query params: q (free-text
// query), tag (repeatable, conjunctive), domain (single selector, "all" by
// default).
func (s *Server) handleListAgents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := models.FilterState{
		Query:        q.Get("q"),
		RequiredTags: q["tag"],
		Domain:       q.Get("domain"),
	}

	visible := s.selector.Visible(s.catalog, state)

	if state.Query != "" {
		observability.Record(s.eventLog, observability.EventSearchPerformed, map[string]any{
			"query":   state.Query,
			"results": len(visible),
		})
	}

	resp := listAgentsResponse{
		Agents: make([]agentSummary, len(visible)),
		Count:  len(visible),
		Total:  len(s.catalog.Agents()),
	}
	for i, a := range visible {
		resp.Agents[i] = summarize(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAgent(w http.ResponseWriter, r *http.Request) {
	agent, err := s.catalog.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	observability.Record(s.eventLog, observability.EventAgentViewed, map[string]any{"agent": agent.ID})

	icons := make(map[string]string, len(agent.Tools))
	for _, tool := range agent.Tools {
		icons[tool] = core.IconForTool(tool)
	}
	writeJSON(w, http.StatusOK, agentDetail{
		agentSummary: summarize(*agent),
		Body:         agent.Body,
		ToolIcons:    icons,
	})
}

// handleExportAgent serves an agent as a downloadable file in the requested
// format (markdown by default), named after the agent id.
func (s *Server) handleExportAgent(w http.ResponseWriter, r *http.Request) {
	agent, err := s.catalog.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	format, err := core.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := core.Export(*agent, format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	observability.Record(s.eventLog, observability.EventAgentExported, map[string]any{
		"agent":  agent.ID,
		"format": string(format),
	})

	contentType := "text/markdown; charset=utf-8"
	if format == core.FormatJSON {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+core.ExportFileName(*agent, format)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tags": s.selector.Tags(s.catalog)})
}

func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	domains := s.selector.Domains(s.catalog)
	entries := make([]domainEntry, len(domains))
	for i, d := range domains {
		entries[i] = domainEntry{Name: d, Style: core.StyleForDomain(d).Class}
	}
	writeJSON(w, http.StatusOK, map[string]any{"domains": entries})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func summarize(a models.Agent) agentSummary {
	styles := make([]string, len(a.Domains))
	for i, d := range a.Domains {
		styles[i] = core.StyleForDomain(d).Class
	}
	return agentSummary{
		ID:           a.ID,
		Title:        a.Title,
		Domains:      a.Domains,
		Summary:      a.Summary,
		Tools:        a.Tools,
		Tags:         a.Tags,
		DomainStyles: styles,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
