package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/viant/settingsync/settings"
)

type pending struct {
	field settings.Field
	value any
}

// Load reconciles the snapshot with the store.
//
// It returns Skipped when storage is disabled or no snapshot exists, Rejected
// with an error wrapping ErrMalformedSnapshot when the snapshot cannot be
// decoded, and Applied otherwise. Notification failures are logged only.
func (s *Service) Load(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Enabled() {
		return Skipped, nil
	}

	URL := s.SnapshotURL()
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return Skipped, fmt.Errorf("check snapshot %q: %w", URL, err)
	}
	if !exists {
		return Skipped, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return Skipped, fmt.Errorf("read snapshot %q: %w", URL, err)
	}

	changes, err := s.decode(data)
	if err != nil {
		s.logger.Printf("failed to load settings from %s: %v", URL, err)
		return Rejected, fmt.Errorf("%w %q: %w", ErrMalformedSnapshot, URL, err)
	}

	var credentialsJSON, expressAPIKey string
	err = s.store.Update(func(tx *settings.Tx) error {
		for _, change := range changes {
			if err := s.apply(tx, change); err != nil {
				return err
			}
		}
		credentialsJSON = tx.String(settings.GoogleCredentialsJSON)
		expressAPIKey = tx.String(settings.VertexExpressAPIKey)
		return nil
	})
	if err != nil {
		return Rejected, fmt.Errorf("apply snapshot %q: %w", URL, err)
	}

	if credentialsJSON != "" || expressAPIKey != "" {
		if err := s.notify(credentialsJSON, expressAPIKey); err != nil {
			s.logger.Printf("failed to update credentials: %v", err)
		}
	}
	s.logger.Printf("loaded %d settings from %s", len(changes), URL)
	return Applied, nil
}

// decode parses the document and converts every applicable value to its
// field kind before anything is written to the store.
func (s *Service) decode(data []byte) ([]pending, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}
	if document == nil {
		return nil, fmt.Errorf("snapshot is not a JSON object")
	}
	names := make([]string, 0, len(document))
	for name := range document {
		names = append(names, name)
	}
	sort.Strings(names)

	ret := make([]pending, 0, len(names))
	for _, name := range names {
		field, ok := s.store.Field(name)
		if !ok || s.policy.IsExcluded(name) {
			continue
		}
		value, err := field.Kind.Decode(document[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		ret = append(ret, pending{field: *field, value: value})
	}
	return ret, nil
}

func (s *Service) apply(tx *settings.Tx, change pending) error {
	name := change.field.Name
	switch change.field.Merge {
	case settings.MergeUnion:
		persisted, _ := change.value.(string)
		return tx.Set(name, Union(tx.String(name), persisted), settings.SourceSnapshot)
	case settings.MergeEnvPrecedence:
		if !IsEmptyValue(tx.String(name)) {
			s.logger.Printf("keeping %s from environment", name)
			return nil
		}
		if err := tx.Set(name, change.value, settings.SourceSnapshot); err != nil {
			return err
		}
		persisted, _ := change.value.(string)
		if persisted == "" {
			s.logger.Printf("persisted %s is empty", name)
			return nil
		}
		if err := s.env.Set(envName(change.field), persisted); err != nil {
			s.logger.Printf("failed to export %s: %v", name, err)
		}
		s.logger.Printf("loaded %s from snapshot", name)
		return nil
	default:
		return tx.Set(name, change.value, settings.SourceSnapshot)
	}
}

func envName(field settings.Field) string {
	if field.Env != "" {
		return field.Env
	}
	return field.Name
}
