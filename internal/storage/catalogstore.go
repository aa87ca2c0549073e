// Package storage contains the catalog persistence layer: loading the
// read-only agent catalog from its authored sources and validating it.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/valter-silva-au/agent-gallery/pkg/models"
	"gopkg.in/yaml.v3"
)

// CatalogStoreManager defines the interface for loading and reading the
// agent catalog. The catalog is loaded once (or reloaded explicitly) and
// is read-only between loads.
type CatalogStoreManager interface {
	// Load reads the catalog from the configured path. The path may be an
	// agents.json document or a directory of markdown agent files with
	// YAML frontmatter. Malformed entries are load errors, not runtime
	// conditions the filter defends against.
	Load() error

	// Agents returns the loaded records in authored order.
	Agents() []models.Agent

	// Get returns the record with the given id.
	Get(id string) (*models.Agent, error)

	// Version increments on every successful Load, so derived computations
	// can be memoized against it.
	Version() uint64

	// Path returns the catalog source path.
	Path() string
}

type fileCatalogStore struct {
	path string

	mu      sync.RWMutex
	agents  []models.Agent
	byID    map[string]int
	version uint64
}

// NewCatalogStoreManager creates a CatalogStoreManager reading from the
// given path. The store is empty until Load is called.
func NewCatalogStoreManager(path string) CatalogStoreManager {
	return &fileCatalogStore{
		path: path,
		byID: make(map[string]int),
	}
}

func (s *fileCatalogStore) Path() string {
	return s.path
}

func (s *fileCatalogStore) Load() error {
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var agents []models.Agent
	if info.IsDir() {
		agents, err = loadMarkdownDir(s.path)
	} else {
		agents, err = loadJSONFile(s.path)
	}
	if err != nil {
		return err
	}

	if err := ValidateAgents(agents); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	byID := make(map[string]int, len(agents))
	for i, a := range agents {
		byID[a.ID] = i
	}

	s.mu.Lock()
	s.agents = agents
	s.byID = byID
	s.version++
	s.mu.Unlock()
	return nil
}

// Agents returns a copy of the loaded records so callers cannot mutate the
// catalog through the returned slice header.
func (s *fileCatalogStore) Agents() []models.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Agent, len(s.agents))
	copy(result, s.agents)
	return result
}

func (s *fileCatalogStore) Get(id string) (*models.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("agent %q not found", id)
	}
	a := s.agents[i]
	return &a, nil
}

func (s *fileCatalogStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// loadJSONFile reads a catalog authored as a single JSON array of records.
func loadJSONFile(path string) ([]models.Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var agents []models.Agent
	if err := json.Unmarshal(data, &agents); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return agents, nil
}

// agentFrontmatter is the YAML header of a markdown agent source file.
// The record id comes from the file name.
type agentFrontmatter struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Domains []string `yaml:"domains"`
	Tools   []string `yaml:"tools"`
	Tags    []string `yaml:"tags"`
}

// loadMarkdownDir reads a catalog authored as a directory of <id>.md files
// with YAML frontmatter followed by the prompt body. Files are loaded in
// lexicographic name order so the catalog ordering is deterministic.
func loadMarkdownDir(dir string) ([]models.Agent, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	agents := make([]models.Agent, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		agent, err := parseAgentFile(path)
		if err != nil {
			return nil, err
		}
		agents = append(agents, *agent)
	}
	return agents, nil
}

// parseAgentFile parses a single markdown agent source file.
func parseAgentFile(path string) (*models.Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading agent file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != "---" {
		return nil, fmt.Errorf("parsing %s: missing frontmatter", path)
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, fmt.Errorf("parsing %s: unterminated frontmatter", path)
	}

	var fm agentFrontmatter
	headerText := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(headerText), &fm); err != nil {
		return nil, fmt.Errorf("parsing %s frontmatter: %w", path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), ".md")
	return &models.Agent{
		ID:      id,
		Title:   fm.Title,
		Domains: fm.Domains,
		Summary: fm.Summary,
		Tools:   fm.Tools,
		Tags:    fm.Tags,
		Body:    strings.TrimSpace(strings.Join(lines[closing+1:], "\n")),
	}, nil
}

// ValidateAgents checks catalog-wide integrity: every record must have a
// non-empty id and title, and ids must be unique. All problems are
// reported together.
func ValidateAgents(agents []models.Agent) error {
	var errs []string
	seen := make(map[string]bool, len(agents))

	for i, a := range agents {
		if a.ID == "" {
			errs = append(errs, fmt.Sprintf("record %d has an empty id", i))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate id %q", a.ID))
		}
		seen[a.ID] = true
		if a.Title == "" {
			errs = append(errs, fmt.Sprintf("agent %q has an empty title", a.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
