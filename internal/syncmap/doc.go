// Package syncmap offers a small generic map guarded by a sync.RWMutex.  It
// backs the in-memory environment used by tests and the credential-keyed
// client cache of the vertex package.
package syncmap
