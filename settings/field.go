package settings

import (
	"os"
	"strings"

	"github.com/viant/settingsync/internal/env"
)

// Merge selects how a persisted value is reconciled with the live one
type Merge int

const (
	// MergeOverwrite replaces the live value with the persisted one.
	MergeOverwrite Merge = iota
	// MergeUnion treats both values as comma separated token sets and keeps their union.
	MergeUnion
	// MergeEnvPrecedence keeps a non-empty live value and adopts the persisted one otherwise.
	MergeEnvPrecedence
)

func (m Merge) String() string {
	switch m {
	case MergeOverwrite:
		return "overwrite"
	case MergeUnion:
		return "union"
	case MergeEnvPrecedence:
		return "env-precedence"
	}
	return "unknown"
}

// Field declares a single setting
type Field struct {
	Name string
	// Env is the environment variable the value is read from; empty when the field
	// is not environment backed.
	Env     string
	Kind    Kind
	Merge   Merge
	Default any
	// Transient fields are never written to nor applied from a snapshot.
	Transient bool
	// Opaque fields hold values that have no place in a snapshot.
	Opaque bool
	// Secret values are masked when displayed.
	Secret bool
	// Normalize adjusts the raw environment text before parsing.
	Normalize func(string) string
	// Resolve computes the initial value from the environment and the values
	// resolved so far; it replaces Env/Default handling when set.
	Resolve func(e env.Environment, resolved map[string]any) (any, Source)
}

func stripQuotes(text string) string { return strings.Trim(text, `"`) }

const (
	GeminiAPIKeys         = "GEMINI_API_KEYS"
	GoogleCredentialsJSON = "GOOGLE_CREDENTIALS_JSON"
	VertexExpressAPIKey   = "VERTEX_EXPRESS_API_KEY"
	EnableStorage         = "ENABLE_STORAGE"
	StorageDir            = "STORAGE_DIR"
)

// DefaultStorageDir is used when STORAGE_DIR is not set
const DefaultStorageDir = "/hajimi/settings/"

// Fields is the static field table of the Store
var Fields = []Field{
	{Name: "PASSWORD", Env: "PASSWORD", Default: "123", Transient: true, Secret: true, Normalize: stripQuotes},
	{Name: "WEB_PASSWORD", Transient: true, Secret: true, Resolve: resolveWebPassword},
	{Name: GeminiAPIKeys, Env: GeminiAPIKeys, Default: "", Merge: MergeUnion, Secret: true},
	{Name: "FAKE_STREAMING", Env: "FAKE_STREAMING", Kind: KindBool, Default: true},

	{Name: StorageDir, Env: StorageDir, Default: DefaultStorageDir, Transient: true},
	{Name: EnableStorage, Env: EnableStorage, Kind: KindBool, Default: false, Transient: true},

	{Name: "CONCURRENT_REQUESTS", Env: "CONCURRENT_REQUESTS", Kind: KindInt, Default: 1},
	{Name: "INCREASE_CONCURRENT_ON_FAILURE", Env: "INCREASE_CONCURRENT_ON_FAILURE", Kind: KindInt, Default: 0},
	{Name: "MAX_CONCURRENT_REQUESTS", Env: "MAX_CONCURRENT_REQUESTS", Kind: KindInt, Default: 3},

	{Name: "CACHE_EXPIRY_TIME", Env: "CACHE_EXPIRY_TIME", Kind: KindInt, Default: 21600},
	{Name: "MAX_CACHE_ENTRIES", Env: "MAX_CACHE_ENTRIES", Kind: KindInt, Default: 500},
	{Name: "CALCULATE_CACHE_ENTRIES", Env: "CALCULATE_CACHE_ENTRIES", Kind: KindInt, Default: 6},
	{Name: "PRECISE_CACHE", Env: "PRECISE_CACHE", Kind: KindBool, Default: false},

	{Name: "ENABLE_VERTEX", Env: "ENABLE_VERTEX", Kind: KindBool, Default: false},
	{Name: GoogleCredentialsJSON, Env: GoogleCredentialsJSON, Default: "", Merge: MergeEnvPrecedence, Secret: true},
	{Name: "ENABLE_VERTEX_EXPRESS", Env: "ENABLE_VERTEX_EXPRESS", Kind: KindBool, Default: false},
	{Name: VertexExpressAPIKey, Env: VertexExpressAPIKey, Default: "", Merge: MergeEnvPrecedence, Secret: true},

	{Name: "search", Kind: KindObject, Resolve: resolveSearch},

	{Name: "RANDOM_STRING", Env: "RANDOM_STRING", Kind: KindBool, Default: true},
	{Name: "RANDOM_STRING_LENGTH", Env: "RANDOM_STRING_LENGTH", Kind: KindInt, Default: 5},
	{Name: "MAX_EMPTY_RESPONSES", Env: "MAX_EMPTY_RESPONSES", Kind: KindInt, Default: 5},

	{Name: "MAX_RETRY_NUM", Env: "MAX_RETRY_NUM", Kind: KindInt, Default: 15},
	{Name: "MAX_REQUESTS_PER_MINUTE", Env: "MAX_REQUESTS_PER_MINUTE", Kind: KindInt, Default: 30},
	{Name: "MAX_REQUESTS_PER_DAY_PER_IP", Env: "MAX_REQUESTS_PER_DAY_PER_IP", Kind: KindInt, Default: 600},
	{Name: "API_KEY_DAILY_LIMIT", Env: "API_KEY_DAILY_LIMIT", Kind: KindInt, Default: 100},

	{Name: "BLOCKED_MODELS", Env: "BLOCKED_MODELS", Kind: KindSet, Transient: true, Opaque: true},
	{Name: "PUBLIC_MODE", Env: "PUBLIC_MODE", Kind: KindBool, Default: false, Transient: true},
	{Name: "DASHBOARD_URL", Env: "DASHBOARD_URL", Default: "", Transient: true},
	{Name: "WHITELIST_MODELS", Env: "WHITELIST_MODELS", Kind: KindSet, Transient: true, Opaque: true},
	{Name: "WHITELIST_USER_AGENT", Env: "WHITELIST_USER_AGENT", Kind: KindSet, Opaque: true, Normalize: strings.ToLower},

	{Name: "ALLOWED_ORIGINS_STR", Env: "ALLOWED_ORIGINS", Default: ""},
	{Name: "ALLOWED_ORIGINS", Env: "ALLOWED_ORIGINS", Kind: KindList},

	// runtime
	{Name: "BASE_DIR", Transient: true, Opaque: true, Resolve: resolveBaseDir},
	{Name: "INVALID_API_KEYS", Env: "INVALID_API_KEYS", Default: "", Secret: true},
	{Name: "version", Kind: KindObject, Transient: true, Default: map[string]any{
		"local_version":  "0.0.0",
		"remote_version": "0.0.0",
		"has_update":     false,
	}},
	{Name: "api_call_stats", Kind: KindObject, Default: map[string]any{"calls": []any{}}},

	// deprecated
	{Name: "FAKE_STREAMING_INTERVAL", Env: "FAKE_STREAMING_INTERVAL", Kind: KindFloat, Default: 1.0},
	{Name: "FAKE_STREAMING_CHUNK_SIZE", Env: "FAKE_STREAMING_CHUNK_SIZE", Kind: KindInt, Default: 10},
	{Name: "FAKE_STREAMING_DELAY_PER_CHUNK", Env: "FAKE_STREAMING_DELAY_PER_CHUNK", Kind: KindFloat, Default: 0.1},
	{Name: "NONSTREAM_KEEPALIVE_ENABLED", Env: "NONSTREAM_KEEPALIVE_ENABLED", Kind: KindBool, Default: true},
	{Name: "NONSTREAM_KEEPALIVE_INTERVAL", Env: "NONSTREAM_KEEPALIVE_INTERVAL", Kind: KindFloat, Default: 5.0},
}

func resolveWebPassword(e env.Environment, resolved map[string]any) (any, Source) {
	if v, ok := e.Lookup("WEB_PASSWORD"); ok {
		return stripQuotes(v), SourceEnvironment
	}
	password, _ := resolved["PASSWORD"].(string)
	return password, SourceDefault
}

func resolveSearch(e env.Environment, _ map[string]any) (any, Source) {
	source := SourceDefault
	mode, ok := e.Lookup("SEARCH_MODE")
	if ok {
		source = SourceEnvironment
	}
	prompt, ok := e.Lookup("SEARCH_PROMPT")
	if ok {
		source = SourceEnvironment
	} else {
		prompt = "（使用搜索工具联网搜索，需要在content中结合搜索内容）"
	}
	return map[string]any{
		"search_mode":   ParseBool(mode),
		"search_prompt": stripQuotes(prompt),
	}, source
}

func resolveBaseDir(_ env.Environment, _ map[string]any) (any, Source) {
	dir, err := os.Getwd()
	if err != nil {
		return "", SourceDefault
	}
	return dir, SourceDefault
}
