package persist

import (
	"log"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/settingsync/config"
	"github.com/viant/settingsync/internal/conv"
	"github.com/viant/settingsync/internal/env"
	"github.com/viant/settingsync/settings"
)

// Notifier is the downstream collaborator told about reloaded credentials.
type Notifier interface {
	// ReloadConfig re-derives the notifier state from the current environment.
	ReloadConfig() error
	SetCredentialsJSON(value string)
	SetExpressAPIKeys(keys []string)
}

// Service saves and loads snapshots of a settings store. Save and Load calls
// are serialised.
type Service struct {
	store    *settings.Store
	config   *config.Config
	fs       afs.Service
	env      env.Environment
	notifier Notifier
	logger   *log.Logger
	policy   *ExclusionPolicy
	extra    []string

	mu sync.Mutex
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithStore sets the store to persist. When omitted a store is built from the
// service environment.
func WithStore(store *settings.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithConfig sets storage overrides.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithFS overrides the storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithEnvironment sets the environment credentials are mirrored into.
func WithEnvironment(environment env.Environment) Option {
	return func(s *Service) {
		s.env = environment
	}
}

// WithNotifier sets the collaborator notified after credentials are reloaded.
func WithNotifier(notifier Notifier) Option {
	return func(s *Service) {
		s.notifier = notifier
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithExclusions adds names to the exclusion policy.
func WithExclusions(names ...string) Option {
	return func(s *Service) {
		s.extra = append(s.extra, names...)
	}
}

// New creates a persistence service
func New(opts ...Option) (*Service, error) {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Store returns the persisted store
func (s *Service) Store() *settings.Store { return s.store }

// Policy returns the exclusion policy
func (s *Service) Policy() *ExclusionPolicy { return s.policy }

// Enabled reports whether persistence is switched on
func (s *Service) Enabled() bool {
	if s.config != nil && s.config.Storage != nil {
		return conv.ValueOr(s.config.Storage.Enabled, s.store.Bool(settings.EnableStorage))
	}
	return s.store.Bool(settings.EnableStorage)
}

// StorageURL returns the storage location
func (s *Service) StorageURL() string {
	if s.config != nil && s.config.Storage != nil && s.config.Storage.URL != "" {
		return s.config.Storage.URL
	}
	if dir := s.store.String(settings.StorageDir); dir != "" {
		return dir
	}
	return settings.DefaultStorageDir
}

// SnapshotURL returns the snapshot file location
func (s *Service) SnapshotURL() string {
	return url.Join(s.StorageURL(), s.config.FileName())
}
