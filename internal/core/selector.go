package core

import (
	"sync"

	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// Catalog is the read-only record source the selector computes over.
// Version must change whenever the underlying record set is (re)loaded.
type Catalog interface {
	Agents() []models.Agent
	Version() uint64
}

// CatalogSelector memoizes the filtered view and the derived tag/domain
// universes, keyed on the catalog version and filter state. Callers can
// invoke it on every input event; recomputation only happens when an
// input actually changed. Results are identical to calling FilterAgents,
// TagUniverse, and DomainUniverse directly.
type CatalogSelector struct {
	mu sync.Mutex

	visibleVersion uint64
	visibleState   models.FilterState
	visibleValid   bool
	visible        []models.Agent

	universeVersion uint64
	universeValid   bool
	tags            []string
	domains         []string
}

// NewCatalogSelector creates an empty selector with no cached results.
func NewCatalogSelector() *CatalogSelector {
	return &CatalogSelector{}
}

// Visible returns the agents matching state, recomputing only when the
// catalog version or the filter state differ from the previous call. The
// returned slice is the caller's to keep; appends or writes to it never
// reach the memoized result.
func (s *CatalogSelector) Visible(cat Catalog, state models.FilterState) []models.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := cat.Version()
	if !s.visibleValid || s.visibleVersion != version || !s.visibleState.Equal(state) {
		s.visible = FilterAgents(cat.Agents(), state)
		s.visibleVersion = version
		s.visibleState = state
		s.visibleValid = true
	}

	out := make([]models.Agent, len(s.visible))
	copy(out, s.visible)
	return out
}

// Tags returns the memoized tag universe for the catalog.
func (s *CatalogSelector) Tags(cat Catalog) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshUniverses(cat)
	return s.tags
}

// Domains returns the memoized domain universe for the catalog.
func (s *CatalogSelector) Domains(cat Catalog) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshUniverses(cat)
	return s.domains
}

// refreshUniverses recomputes both derived lists if the catalog changed.
// Callers must hold s.mu.
func (s *CatalogSelector) refreshUniverses(cat Catalog) {
	version := cat.Version()
	if s.universeValid && s.universeVersion == version {
		return
	}
	agents := cat.Agents()
	s.tags = TagUniverse(agents)
	s.domains = DomainUniverse(agents)
	s.universeVersion = version
	s.universeValid = true
}
