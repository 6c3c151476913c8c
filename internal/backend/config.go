package backend

import (
	"fmt"

	"bills/internal/store/sqlite"
)

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	if c.Type == SQLiteBackend {
		if c.SQLiteDSN == "" {
			return fmt.Errorf("SQLite DSN is required for sqlite backend")
		}
		if !sqlite.IsMemoryDSN(c.SQLiteDSN) {
			return fmt.Errorf("SQLite DSN %q is not a shared-cache in-memory database", c.SQLiteDSN)
		}
	}

	return nil
}

// ValidTypes returns all valid backend type strings
func ValidTypes() []string {
	return []string{MemoryBackend.String(), SQLiteBackend.String()}
}
