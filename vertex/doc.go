// Package vertex keeps the credential state used to reach Vertex AI and a
// per-key cache of client descriptors derived from it.  Config satisfies the
// persist.Notifier contract: a reload re-reads the credentials from the
// environment and drops every cached client.
package vertex
