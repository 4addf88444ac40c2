package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/settingsync/internal/env"
)

func TestNew_Defaults(t *testing.T) {
	store := New(env.NewMap(nil))

	assert.EqualValues(t, "123", store.String("PASSWORD"))
	assert.EqualValues(t, "123", store.String("WEB_PASSWORD"))
	assert.EqualValues(t, DefaultStorageDir, store.String(StorageDir))
	assert.False(t, store.Bool(EnableStorage))
	assert.True(t, store.Bool("FAKE_STREAMING"))
	assert.EqualValues(t, 21600, store.Int("CACHE_EXPIRY_TIME"))
	assert.EqualValues(t, 0.1, store.Float("FAKE_STREAMING_DELAY_PER_CHUNK"))
	assert.EqualValues(t, []string{}, store.Strings("BLOCKED_MODELS"))
	assert.EqualValues(t, SourceDefault, store.Source("CACHE_EXPIRY_TIME"))

	version, ok := store.Get("version")
	require.True(t, ok)
	assert.EqualValues(t, map[string]any{"local_version": "0.0.0", "remote_version": "0.0.0", "has_update": false}, version)
}

func TestNew_Environment(t *testing.T) {
	store := New(env.NewMap(map[string]string{
		"PASSWORD":             `"secret"`,
		"ENABLE_STORAGE":       "Yes",
		"STORAGE_DIR":          "/tmp/s",
		"CONCURRENT_REQUESTS":  "4",
		"MAX_CACHE_ENTRIES":    "lots",
		"WHITELIST_USER_AGENT": "Curl, Wget,curl",
		"ALLOWED_ORIGINS":      "http://a, http://b",
		"SEARCH_MODE":          "true",
		"SEARCH_PROMPT":        `"look it up"`,
	}))

	assert.EqualValues(t, "secret", store.String("PASSWORD"))
	assert.EqualValues(t, "secret", store.String("WEB_PASSWORD"))
	assert.True(t, store.Bool(EnableStorage))
	assert.EqualValues(t, "/tmp/s", store.String(StorageDir))
	assert.EqualValues(t, 4, store.Int("CONCURRENT_REQUESTS"))
	assert.EqualValues(t, SourceEnvironment, store.Source("CONCURRENT_REQUESTS"))
	assert.EqualValues(t, 500, store.Int("MAX_CACHE_ENTRIES"), "invalid numbers keep the default")
	assert.EqualValues(t, SourceDefault, store.Source("MAX_CACHE_ENTRIES"))
	assert.EqualValues(t, []string{"curl", "wget"}, store.Strings("WHITELIST_USER_AGENT"))
	assert.EqualValues(t, []string{"http://a", "http://b"}, store.Strings("ALLOWED_ORIGINS"))
	assert.EqualValues(t, "http://a, http://b", store.String("ALLOWED_ORIGINS_STR"))

	search, _ := store.Get("search")
	assert.EqualValues(t, map[string]any{"search_mode": true, "search_prompt": "look it up"}, search)
	assert.EqualValues(t, SourceEnvironment, store.Source("search"))
}

func TestStore_Set(t *testing.T) {
	store := New(nil)

	require.NoError(t, store.Set("MAX_RETRY_NUM", 3))
	assert.EqualValues(t, 3, store.Int("MAX_RETRY_NUM"))
	assert.EqualValues(t, SourceOverride, store.Source("MAX_RETRY_NUM"))

	assert.ErrorIs(t, store.Set("NOPE", 1), ErrUnknownField)
	assert.ErrorIs(t, store.Set("MAX_RETRY_NUM", "3"), ErrKindMismatch)
	assert.EqualValues(t, 3, store.Int("MAX_RETRY_NUM"))
}

// TestStore_GetReturnsCopy ensures callers cannot mutate the store through returned values.
func TestStore_GetReturnsCopy(t *testing.T) {
	store := New(env.NewMap(map[string]string{"ALLOWED_ORIGINS": "a,b"}))
	origins := store.Strings("ALLOWED_ORIGINS")
	origins[0] = "mutated"
	assert.EqualValues(t, []string{"a", "b"}, store.Strings("ALLOWED_ORIGINS"))

	search, _ := store.Get("search")
	search.(map[string]any)["search_mode"] = true
	again, _ := store.Get("search")
	assert.EqualValues(t, false, again.(map[string]any)["search_mode"])
}

func TestStore_ViewIsReadOnly(t *testing.T) {
	store := New(nil)
	store.View(func(tx *Tx) {
		assert.Error(t, tx.Set("MAX_RETRY_NUM", 1, SourceOverride))
		assert.EqualValues(t, "123", tx.String("PASSWORD"))
	})
}

func TestStore_Attributes(t *testing.T) {
	store := New(env.NewMap(map[string]string{GeminiAPIKeys: "k1,k2"}))
	attrs := store.Attributes()
	require.Len(t, attrs, len(Fields))

	byName := map[string]Attribute{}
	for _, attr := range attrs {
		byName[attr.Name] = attr
	}
	assert.EqualValues(t, masked, byName[GeminiAPIKeys].Value)
	assert.EqualValues(t, "", byName[VertexExpressAPIKey].Value)
	assert.EqualValues(t, "21600", byName["CACHE_EXPIRY_TIME"].Value)
	assert.EqualValues(t, "int", byName["CACHE_EXPIRY_TIME"].Kind)

	text := FormatText(attrs)
	assert.True(t, strings.HasPrefix(text, "NAME"))
	assert.Contains(t, text, "(not set)")
	assert.NotContains(t, text, "k1")
}
