// Package persist keeps a settings store in sync with a JSON snapshot.
//
// Save writes every persistable setting to <storage>/settings.json. Load reads
// the snapshot back and reconciles it with the live store field by field, using
// the merge policy declared in the settings field table:
//
//   - overwrite: the persisted value replaces the live one
//   - union: comma separated token lists are merged as sets
//   - env-precedence: a non-empty live value always wins, an empty one adopts the
//     persisted value and mirrors it into the process environment
//
// Fields named by the exclusion policy are never written nor applied. When the
// credential fields end up non-empty after a Load, the configured Notifier is asked
// to re-derive its state so that credential-keyed caches are dropped.
package persist
