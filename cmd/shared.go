package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"sync"

	"github.com/viant/settingsync/config"
	"github.com/viant/settingsync/internal/env"
	"github.com/viant/settingsync/persist"
	"github.com/viant/settingsync/settings"
	"github.com/viant/settingsync/vertex"
)

var _ persist.Notifier = (*vertex.Config)(nil)

var (
	cfgPath string

	// stdout receives command output
	stdout io.Writer = os.Stdout

	svcOnce sync.Once
	svcInst *persist.Service
	svcErr  error
)

func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises the persistence service only once per CLI
// invocation.
func serviceSingleton() (*persist.Service, error) {
	svcOnce.Do(func() {
		var cfg *config.Config
		if cfgPath != "" {
			if cfg, svcErr = config.Load(context.Background(), cfgPath); svcErr != nil {
				return
			}
		}
		environment := env.OS()
		options := []persist.Option{
			persist.WithConfig(cfg),
			persist.WithEnvironment(environment),
			persist.WithStore(settings.New(environment)),
		}
		notifier, err := vertex.New(environment)
		if err != nil {
			log.Printf("vertex credentials ignored: %v", err)
		} else {
			options = append(options, persist.WithNotifier(notifier))
		}
		svcInst, svcErr = persist.New(options...)
	})
	return svcInst, svcErr
}
