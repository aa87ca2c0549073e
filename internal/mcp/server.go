// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the agent catalog as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// Server wraps the catalog and exposes it as MCP tools.
type Server struct {
	server   *gomcp.Server
	catalog  storage.CatalogStoreManager
	selector *core.CatalogSelector
}

// NewServer creates a new MCP server over the given catalog.
func NewServer(catalog storage.CatalogStoreManager, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		catalog:  catalog,
		selector: core.NewCatalogSelector(),
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "agent-gallery", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listAgentsInput struct {
	Query  string   `json:"query,omitempty" jsonschema:"free-text search over title, summary, and tags (case-insensitive)"`
	Tags   []string `json:"tags,omitempty" jsonschema:"required tags; an agent must carry every listed tag"`
	Domain string   `json:"domain,omitempty" jsonschema:"restrict to a single domain, or 'all' for no restriction"`
}

type agentOutput struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Domains []string `json:"domains"`
	Summary string   `json:"summary"`
	Tools   []string `json:"tools"`
	Tags    []string `json:"tags"`
}

type listAgentsOutput struct {
	Agents []agentOutput `json:"agents"`
	Count  int           `json:"count"`
}

type getAgentInput struct {
	ID string `json:"id" jsonschema:"required,the agent id (e.g. code-reviewer)"`
}

type getAgentOutput struct {
	agentOutput
	Body string `json:"body"`
}

type listTagsInput struct{}

type listTagsOutput struct {
	Tags []string `json:"tags"`
}

type listDomainsInput struct{}

type listDomainsOutput struct {
	Domains []string `json:"domains"`
}

type exportAgentInput struct {
	ID     string `json:"id" jsonschema:"required,the agent id to export"`
	Format string `json:"format,omitempty" jsonschema:"export format: markdown (default) or json"`
}

type exportAgentOutput struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_agents",
		Description: "List catalog agents, optionally narrowed by a free-text query, required tags (all must match), and a domain.",
	}, s.handleListAgents)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_agent",
		Description: "Get a single agent by id, including its full prompt body.",
	}, s.handleGetAgent)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tags",
		Description: "List every distinct tag in the catalog, sorted ascending.",
	}, s.handleListTags)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_domains",
		Description: "List every distinct domain in the catalog, sorted ascending.",
	}, s.handleListDomains)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "export_agent",
		Description: "Serialize an agent for download: markdown (frontmatter header plus prompt body) or a JSON dump of all fields.",
	}, s.handleExportAgent)
}

// --- Tool handlers ---

func (s *Server) handleListAgents(_ context.Context, _ *gomcp.CallToolRequest, input listAgentsInput) (*gomcp.CallToolResult, listAgentsOutput, error) {
	state := models.FilterState{
		Query:        input.Query,
		RequiredTags: input.Tags,
		Domain:       input.Domain,
	}

	visible := s.selector.Visible(s.catalog, state)

	out := listAgentsOutput{
		Agents: make([]agentOutput, len(visible)),
		Count:  len(visible),
	}
	for i, a := range visible {
		out.Agents[i] = agentToOutput(a)
	}
	return nil, out, nil
}

func (s *Server) handleGetAgent(_ context.Context, _ *gomcp.CallToolRequest, input getAgentInput) (*gomcp.CallToolResult, getAgentOutput, error) {
	if input.ID == "" {
		return errorResult("id is required"), getAgentOutput{}, nil
	}

	agent, err := s.catalog.Get(input.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("getting agent %s: %s", input.ID, err)), getAgentOutput{}, nil
	}

	out := getAgentOutput{
		agentOutput: agentToOutput(*agent),
		Body:        agent.Body,
	}
	return nil, out, nil
}

func (s *Server) handleListTags(_ context.Context, _ *gomcp.CallToolRequest, _ listTagsInput) (*gomcp.CallToolResult, listTagsOutput, error) {
	return nil, listTagsOutput{Tags: s.selector.Tags(s.catalog)}, nil
}

func (s *Server) handleListDomains(_ context.Context, _ *gomcp.CallToolRequest, _ listDomainsInput) (*gomcp.CallToolResult, listDomainsOutput, error) {
	return nil, listDomainsOutput{Domains: s.selector.Domains(s.catalog)}, nil
}

func (s *Server) handleExportAgent(_ context.Context, _ *gomcp.CallToolRequest, input exportAgentInput) (*gomcp.CallToolResult, exportAgentOutput, error) {
	if input.ID == "" {
		return errorResult("id is required"), exportAgentOutput{}, nil
	}

	agent, err := s.catalog.Get(input.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("exporting agent %s: %s", input.ID, err)), exportAgentOutput{}, nil
	}

	format, err := core.ParseFormat(input.Format)
	if err != nil {
		return errorResult(err.Error()), exportAgentOutput{}, nil
	}

	content, err := core.Export(*agent, format)
	if err != nil {
		return errorResult(fmt.Sprintf("exporting agent %s: %s", input.ID, err)), exportAgentOutput{}, nil
	}

	out := exportAgentOutput{
		FileName: core.ExportFileName(*agent, format),
		Content:  content,
	}
	return nil, out, nil
}

// --- Helpers ---

func agentToOutput(a models.Agent) agentOutput {
	return agentOutput{
		ID:      a.ID,
		Title:   a.Title,
		Domains: a.Domains,
		Summary: a.Summary,
		Tools:   a.Tools,
		Tags:    a.Tags,
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
