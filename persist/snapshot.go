package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/settingsync/internal/conv"
	"github.com/viant/settingsync/settings"
)

const (
	dirMode  = 0o755
	fileMode = 0o600 // snapshots carry API keys
)

// Save writes the persistable settings to the snapshot file and returns its
// URL. It is a no-op returning an empty URL when storage is disabled.
func (s *Service) Save(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Enabled() {
		return "", nil
	}

	dir := s.StorageURL()
	exists, err := s.fs.Exists(ctx, dir)
	if err != nil {
		return "", fmt.Errorf("check storage dir %q: %w", dir, err)
	}
	if !exists {
		if err := s.fs.Create(ctx, dir, dirMode, true); err != nil {
			return "", fmt.Errorf("create storage dir %q: %w", dir, err)
		}
	}

	document := s.document()
	data, err := json.MarshalIndent(document, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	URL := s.SnapshotURL()
	s.logger.Printf("saving settings to %s", URL)
	if err := s.fs.Upload(ctx, URL, fileMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("write snapshot %q: %w", URL, err)
	}
	return URL, nil
}

// document encodes every persistable field holding the store read lock.
// Values that fail to encode are left out.
func (s *Service) document() map[string]json.RawMessage {
	ret := make(map[string]json.RawMessage)
	s.store.View(func(tx *settings.Tx) {
		for _, field := range tx.Fields() {
			if field.Opaque || s.policy.IsExcluded(field.Name) {
				continue
			}
			value, _ := tx.Get(field.Name)
			data, err := conv.Encode(value)
			if err != nil {
				s.logger.Printf("skipping %s: %v", field.Name, err)
				continue
			}
			ret[field.Name] = data
		}
	})
	return ret
}
