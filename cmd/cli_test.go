package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/settingsync/persist"
	"github.com/viant/settingsync/settings"
)

// setup points the CLI at a fresh storage directory and captures its output.
func setup(t *testing.T) (string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(settings.EnableStorage, "true")
	t.Setenv(settings.StorageDir, dir)
	t.Setenv(settings.GoogleCredentialsJSON, "")
	t.Setenv(settings.VertexExpressAPIKey, "")
	t.Setenv(settings.GeminiAPIKeys, "k1")
	t.Setenv("MAX_RETRY_NUM", "3")

	buf := &bytes.Buffer{}
	prev := stdout
	stdout = buf
	svcOnce, svcInst, svcErr = sync.Once{}, nil, nil
	t.Cleanup(func() {
		stdout = prev
		svcOnce, svcInst, svcErr = sync.Once{}, nil, nil
	})
	return dir, buf
}

func TestExecute_SaveAndShow(t *testing.T) {
	dir, buf := setup(t)

	require.NoError(t, Execute([]string{"save"}))
	assert.Contains(t, buf.String(), "saved")
	_, err := os.Stat(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, Execute([]string{"show", "-o", "json", "-p", "MAX_RETRY_NUM,GEMINI_*"}))
	var attrs []settings.Attribute
	require.NoError(t, json.Unmarshal(buf.Bytes(), &attrs))
	require.Len(t, attrs, 2)
	assert.EqualValues(t, settings.GeminiAPIKeys, attrs[0].Name)
	assert.EqualValues(t, "******", attrs[0].Value)
	assert.EqualValues(t, "MAX_RETRY_NUM", attrs[1].Name)
	assert.EqualValues(t, "3", attrs[1].Value)
	assert.EqualValues(t, settings.SourceEnvironment, attrs[1].Source)

	buf.Reset()
	require.NoError(t, Execute([]string{"show", "-o", "yaml", "-p", "MAX_RETRY_NUM"}))
	assert.Contains(t, buf.String(), "name: MAX_RETRY_NUM")
}

func TestExecute_SaveDisabled(t *testing.T) {
	_, buf := setup(t)
	t.Setenv(settings.EnableStorage, "false")
	require.NoError(t, Execute([]string{"save"}))
	assert.Contains(t, buf.String(), "storage disabled")
}

func TestExecute_Load(t *testing.T) {
	dir, buf := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"MAX_RETRY_NUM": 9}`), 0o600))

	require.NoError(t, Execute([]string{"load"}))
	assert.Contains(t, buf.String(), persist.Applied.String())
	assert.EqualValues(t, 9, svcInst.Store().Int("MAX_RETRY_NUM"))
}

func TestExecute_LoadRejected(t *testing.T) {
	dir, buf := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"MAX_RETRY_NUM": `), 0o600))

	err := Execute([]string{"load"})
	assert.True(t, errors.Is(err, persist.ErrMalformedSnapshot))
	assert.Contains(t, buf.String(), persist.Rejected.String())
}

func TestExecute_ConfigFile(t *testing.T) {
	_, buf := setup(t)
	t.Setenv(settings.EnableStorage, "false")
	target := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "settingsync.yaml")
	content := "storage:\n  enabled: true\n  url: " + target + "\n  fileName: snapshot.json\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))

	require.NoError(t, Execute([]string{"-f", cfg, "save"}))
	assert.Contains(t, buf.String(), "snapshot.json")
	_, err := os.Stat(filepath.Join(target, "snapshot.json"))
	assert.NoError(t, err)
}

func TestFirstCommand(t *testing.T) {
	var testCases = []struct {
		args   []string
		expect string
	}{
		{args: []string{"save"}, expect: "save"},
		{args: []string{"-f", "cfg.yaml", "load"}, expect: "load"},
		{args: []string{"--config", "show", "watch"}, expect: "watch"},
		{args: []string{"--config=cfg.yaml", "show", "-o", "json"}, expect: "show"},
		{args: nil, expect: ""},
	}
	for _, tc := range testCases {
		assert.EqualValues(t, tc.expect, firstCommand(tc.args), "%v", tc.args)
	}
}

func TestExtractConfigPath(t *testing.T) {
	assert.EqualValues(t, "a.yaml", extractConfigPath([]string{"-f", "a.yaml", "save"}))
	assert.EqualValues(t, "b.yaml", extractConfigPath([]string{"save", "--config=b.yaml"}))
	assert.EqualValues(t, "", extractConfigPath([]string{"save", "-f"}))
}
