// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: atomic write-to-temp-then-rename (spec §5: a cancelled run
// leaves no partial output file).

package serialize

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// WriteAtomic marshals doc as indented JSON and writes it to path via a
// temp file in the same directory followed by os.Rename, so readers
// never observe a partially written file.
func WriteAtomic(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize: encoding document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".astopo-*.json.tmp")
	if err != nil {
		return fmt.Errorf("serialize: creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	removed := false
	defer func() {
		if !removed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("serialize: writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("serialize: syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("serialize: closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("serialize: renaming temp file into place: %w", err)
	}
	removed = true
	return nil
}
