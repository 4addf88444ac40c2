package persist

import (
	"errors"
	"fmt"

	"github.com/viant/settingsync/settings"
)

// notify pushes the reconciled credentials downstream and into the environment.
func (s *Service) notify(credentialsJSON, expressAPIKey string) error {
	if s.notifier == nil {
		return nil
	}
	s.logger.Printf("credentials present, reloading downstream configuration")
	if err := s.notifier.ReloadConfig(); err != nil {
		return fmt.Errorf("reload config: %w", err)
	}
	var errs []error
	if credentialsJSON != "" {
		s.notifier.SetCredentialsJSON(credentialsJSON)
		if err := s.env.Set(settings.GoogleCredentialsJSON, credentialsJSON); err != nil {
			errs = append(errs, fmt.Errorf("export %s: %w", settings.GoogleCredentialsJSON, err))
		}
	}
	if expressAPIKey != "" {
		keys := settings.SplitAndTrim(expressAPIKey, tokenSeparator)
		s.notifier.SetExpressAPIKeys(keys)
		if err := s.env.Set(settings.VertexExpressAPIKey, expressAPIKey); err != nil {
			errs = append(errs, fmt.Errorf("export %s: %w", settings.VertexExpressAPIKey, err))
		}
		s.logger.Printf("updated %d express API keys", len(keys))
	}
	return errors.Join(errs...)
}
