package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/valter-silva-au/agent-gallery/pkg/models"
	"gopkg.in/yaml.v3"
)

// ExportFormat identifies a serialization form for a single agent.
type ExportFormat string

const (
	// FormatMarkdown is the textual export form: a YAML header block with
	// id, summary, and tools, a blank line, then the prompt body. This is
	// the same frontmatter convention the catalog sources are authored in.
	FormatMarkdown ExportFormat = "markdown"

	// FormatJSON is a structured dump of every agent field.
	FormatJSON ExportFormat = "json"
)

// ParseFormat maps a user-supplied format name to an ExportFormat.
func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (use markdown or json)", s)
	}
}

// exportHeader is the frontmatter block of the textual export form.
type exportHeader struct {
	ID      string   `yaml:"id"`
	Summary string   `yaml:"summary"`
	Tools   []string `yaml:"tools"`
}

// ExportText serializes an agent into the textual export form.
func ExportText(a models.Agent) (string, error) {
	header, err := yaml.Marshal(exportHeader{
		ID:      a.ID,
		Summary: a.Summary,
		Tools:   a.Tools,
	})
	if err != nil {
		return "", fmt.Errorf("marshalling export header for %s: %w", a.ID, err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(a.Body))
	b.WriteString("\n")
	return b.String(), nil
}

// ExportJSON serializes an agent as an indented JSON document.
func ExportJSON(a models.Agent) (string, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling %s as JSON: %w", a.ID, err)
	}
	return string(data) + "\n", nil
}

// Export serializes an agent in the given format.
func Export(a models.Agent, format ExportFormat) (string, error) {
	switch format {
	case FormatJSON:
		return ExportJSON(a)
	default:
		return ExportText(a)
	}
}

// ExportFileName returns the download file name for an agent in the given
// format: the agent id with an extension reflecting the format.
func ExportFileName(a models.Agent, format ExportFormat) string {
	if format == FormatJSON {
		return a.ID + ".json"
	}
	return a.ID + ".md"
}

// ExportedAgent is the result of parsing a textual export back apart.
type ExportedAgent struct {
	ID      string
	Summary string
	Tools   []string
	Body    string
}

// ParseExport splits a textual export into its header fields and body.
// The header is delimited by lines containing exactly "---"; YAML block
// indentation keeps delimiter lookalikes inside field values harmless.
func ParseExport(content string) (*ExportedAgent, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != "---" {
		return nil, fmt.Errorf("parsing export: missing opening header delimiter")
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, fmt.Errorf("parsing export: missing closing header delimiter")
	}

	var header exportHeader
	headerText := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(headerText), &header); err != nil {
		return nil, fmt.Errorf("parsing export header: %w", err)
	}

	body := strings.TrimSpace(strings.Join(lines[closing+1:], "\n"))
	return &ExportedAgent{
		ID:      header.ID,
		Summary: header.Summary,
		Tools:   header.Tools,
		Body:    body,
	}, nil
}
