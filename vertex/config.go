package vertex

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/settingsync/internal/env"
	"github.com/viant/settingsync/internal/syncmap"
	"github.com/viant/settingsync/settings"
)

// Client describes how to reach Vertex AI with a given API key
type Client struct {
	APIKey    string
	ProjectID string
	Express   bool
}

// Config holds Vertex credentials and clients derived from them
type Config struct {
	env env.Environment

	mu              sync.RWMutex
	credentialsJSON string
	projectID       string
	expressAPIKeys  []string

	clients *syncmap.Map[*Client]
}

// New creates a config initialised from environment
func New(environment env.Environment) (*Config, error) {
	if environment == nil {
		environment = env.OS()
	}
	c := &Config{env: environment, clients: syncmap.New[*Client]()}
	if err := c.ReloadConfig(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReloadConfig re-reads credentials from the environment and drops cached clients.
func (c *Config) ReloadConfig() error {
	credentialsJSON, _ := c.env.Lookup(settings.GoogleCredentialsJSON)
	expressAPIKey, _ := c.env.Lookup(settings.VertexExpressAPIKey)
	projectID, err := parseProjectID(credentialsJSON)

	c.mu.Lock()
	c.credentialsJSON = credentialsJSON
	c.projectID = projectID
	c.expressAPIKeys = settings.SplitAndTrim(expressAPIKey, ",")
	c.mu.Unlock()
	c.clients.Clear()
	if err != nil {
		return fmt.Errorf("invalid %s: %w", settings.GoogleCredentialsJSON, err)
	}
	return nil
}

// SetCredentialsJSON replaces the service account credentials
func (c *Config) SetCredentialsJSON(value string) {
	projectID, _ := parseProjectID(value)
	c.mu.Lock()
	c.credentialsJSON = value
	c.projectID = projectID
	c.mu.Unlock()
	c.clients.Clear()
}

// SetExpressAPIKeys replaces the express mode API keys
func (c *Config) SetExpressAPIKeys(keys []string) {
	c.mu.Lock()
	c.expressAPIKeys = append([]string{}, keys...)
	c.mu.Unlock()
	c.clients.Clear()
}

func (c *Config) CredentialsJSON() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credentialsJSON
}

func (c *Config) ProjectID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projectID
}

func (c *Config) ExpressAPIKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string{}, c.expressAPIKeys...)
}

// Client returns the cached client for apiKey; an empty key selects the
// service account credentials.
func (c *Config) Client(apiKey string) *Client {
	return c.clients.GetOrCreate(apiKey, func() *Client {
		return &Client{APIKey: apiKey, ProjectID: c.ProjectID(), Express: apiKey != ""}
	})
}

// CachedClients returns the number of cached clients
func (c *Config) CachedClients() int { return c.clients.Len() }

func parseProjectID(credentialsJSON string) (string, error) {
	if strings.TrimSpace(credentialsJSON) == "" {
		return "", nil
	}
	var credentials struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal([]byte(credentialsJSON), &credentials); err != nil {
		return "", err
	}
	return credentials.ProjectID, nil
}
