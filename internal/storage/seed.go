package storage

import (
	_ "embed"
	"fmt"
	"os"
)

// seedCatalog is the starter catalog scaffolded by `agl init`.
//
//go:embed seed/agents.json
var seedCatalog []byte

// WriteSeedCatalog writes the embedded starter catalog to the given path.
// It refuses to overwrite an existing file.
func WriteSeedCatalog(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("writing seed catalog: %s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("writing seed catalog: %w", err)
	}

	if err := os.WriteFile(path, seedCatalog, 0o644); err != nil {
		return fmt.Errorf("writing seed catalog: %w", err)
	}
	return nil
}
