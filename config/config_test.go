package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/settingsync/internal/conv"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name      string
		content   string
		hasErr    bool
		enabled   *bool
		url       string
		fileName  string
		exclusion []string
	}{
		{
			name:      "full",
			content:   "storage:\n  enabled: true\n  url: /var/lib/settings\n  fileName: snapshot.json\nexclusions:\n  - MAX_RETRY_NUM\n",
			enabled:   conv.Pointer(true),
			url:       "/var/lib/settings",
			fileName:  "snapshot.json",
			exclusion: []string{"MAX_RETRY_NUM"},
		},
		{
			name:     "empty",
			content:  "",
			fileName: DefaultFileName,
		},
		{
			name:    "bad file name",
			content: "storage:\n  fileName: a/b.json\n",
			hasErr:  true,
		},
		{
			name:    "blank exclusion",
			content: "exclusions:\n  - ' '\n",
			hasErr:  true,
		},
		{
			name:    "invalid yaml",
			content: "storage: [",
			hasErr:  true,
		},
	}

	for _, tc := range testCases {
		path := filepath.Join(dir, tc.name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))
		cfg, err := Load(context.Background(), path)
		if tc.hasErr {
			assert.Error(t, err, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		assert.EqualValues(t, tc.fileName, cfg.FileName(), tc.name)
		assert.EqualValues(t, tc.exclusion, cfg.Exclusions, tc.name)
		if tc.enabled != nil {
			require.NotNil(t, cfg.Storage, tc.name)
			assert.EqualValues(t, tc.enabled, cfg.Storage.Enabled, tc.name)
			assert.EqualValues(t, tc.url, cfg.Storage.URL, tc.name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_FileName(t *testing.T) {
	var cfg *Config
	assert.EqualValues(t, DefaultFileName, cfg.FileName())
}
