// Package snapshot persists per-source output documents as pretty-printed
// JSON files and reads back persisted document shells.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	appLog "udonevent/internal/log"
	"udonevent/internal/model"
)

// Write marshals doc and writes it to dir/name, creating dir on demand and
// overwriting any previous snapshot. Writes are plain, not atomic: a run that
// dies mid-write is simply rerun from scratch.
func Write(dir, name string, doc model.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: create output dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: write: %w", err)
	}

	appLog.Info("snapshot written", "path", path, "events", len(doc.Events))
	return nil
}

// LoadShell reads a persisted snapshot shell, used by sources that carry
// static metadata (name, url, submit url) across runs. A missing or malformed
// shell degrades to an empty document.
func LoadShell(path string) model.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			appLog.Error("snapshot shell read failed, using empty shell", err, "path", path)
		}
		return model.NewDocument()
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(data, &doc); err != nil {
		appLog.Error("snapshot shell parse failed, using empty shell", err, "path", path)
		return model.NewDocument()
	}
	return doc
}
