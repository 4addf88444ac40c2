package persist

import (
	"log"

	"github.com/viant/afs"
	"github.com/viant/settingsync/config"
	"github.com/viant/settingsync/internal/env"
	"github.com/viant/settingsync/settings"
)

// init applies fall-back values for dependencies that were not supplied
// through options and validates the configuration.
func (s *Service) init() error {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.env == nil {
		s.env = env.OS()
	}
	if s.store == nil {
		s.store = settings.New(s.env)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	extra := append(append([]string{}, s.config.Exclusions...), s.extra...)
	s.policy = NewExclusionPolicy(s.store.Fields(), extra...)
	return nil
}
