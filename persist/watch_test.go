package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/settingsync/config"
	"github.com/viant/settingsync/settings"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	watcher, err := NewWatcher(ctx, f.service)
	require.NoError(t, err)

	outcomes := make(chan Outcome, 16)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func(outcome Outcome, _ error) {
			outcomes <- outcome
		})
	}()

	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "other.json"), []byte(`{}`), 0o600))
	staged := filepath.Join(f.dir, "staged.tmp")
	require.NoError(t, os.WriteFile(staged, []byte(`{"MAX_RETRY_NUM": 4}`), 0o600))
	require.NoError(t, os.Rename(staged, filepath.Join(f.dir, config.DefaultFileName)))

	select {
	case outcome := <-outcomes:
		assert.EqualValues(t, Applied, outcome)
	case <-ctx.Done():
		t.Fatal("snapshot write was not observed")
	}
	assert.EqualValues(t, 4, f.store.Int("MAX_RETRY_NUM"))

	cancel()
	assert.NoError(t, <-done)
}

func TestNewWatcher_RemoteStorage(t *testing.T) {
	f := newFixture(t, map[string]string{settings.StorageDir: "mem://localhost/settings"})
	_, err := NewWatcher(context.Background(), f.service)
	assert.Error(t, err)
}
