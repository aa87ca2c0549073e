package core

import "github.com/charmbracelet/lipgloss"

// DomainStyle is the presentation mapping for a domain label, shared by the
// TUI, the CLI table renderer, and the HTTP API so each view does not carry
// its own copy of the table.
type DomainStyle struct {
	// Class is the stable style-class name exposed over the API.
	Class string
	// Color is the terminal color used by the TUI and CLI.
	Color lipgloss.Color
}

// domainStyles maps the catalog's domain taxonomy to presentation styles.
// Domains are the lowercase labels authored in the catalog.
var domainStyles = map[string]DomainStyle{
	"coding":          {Class: "domain-coding", Color: lipgloss.Color("39")},
	"security":        {Class: "domain-security", Color: lipgloss.Color("196")},
	"testing":         {Class: "domain-testing", Color: lipgloss.Color("46")},
	"troubleshooting": {Class: "domain-troubleshooting", Color: lipgloss.Color("214")},
	"data":            {Class: "domain-data", Color: lipgloss.Color("135")},
	"infrastructure":  {Class: "domain-infrastructure", Color: lipgloss.Color("81")},
	"documentation":   {Class: "domain-documentation", Color: lipgloss.Color("229")},
	"research":        {Class: "domain-research", Color: lipgloss.Color("141")},
}

// defaultDomainStyle is used for domains without a dedicated mapping.
var defaultDomainStyle = DomainStyle{Class: "domain-default", Color: lipgloss.Color("245")}

// StyleForDomain returns the presentation style for a domain label.
// Unknown domains fall back to a neutral default.
func StyleForDomain(domain string) DomainStyle {
	if s, ok := domainStyles[domain]; ok {
		return s
	}
	return defaultDomainStyle
}

// toolIcons maps capability identifiers declared in an agent's tool list to
// display glyphs.
var toolIcons = map[string]string{
	"Read":      "📖",
	"Write":     "✏️",
	"Edit":      "📝",
	"Bash":      "💻",
	"Grep":      "🔍",
	"Glob":      "🗂",
	"WebFetch":  "🌐",
	"WebSearch": "🔎",
	"Task":      "🤖",
}

// defaultToolIcon is used for tools without a dedicated glyph.
const defaultToolIcon = "🔧"

// IconForTool returns the display glyph for a capability identifier.
func IconForTool(tool string) string {
	if icon, ok := toolIcons[tool]; ok {
		return icon
	}
	return defaultToolIcon
}
