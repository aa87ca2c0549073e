package cli

import (
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath string
	Config   *models.GalleryConfig

	Catalog  storage.CatalogStoreManager
	Selector *core.CatalogSelector

	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
)
