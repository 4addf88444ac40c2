// Package settings holds the live configuration of the process.
//
// The set of settings is declared once, in the Fields table, together with the
// metadata the persistence layer needs: the value kind, the merge policy used when
// a snapshot is reconciled, whether the field is transient (never persisted) and
// whether its value is opaque (not representable in a snapshot).
//
// A Store is an explicitly owned instance of that table initialised from defaults
// and an environment:
//
//	store := settings.New(env.OS())
//	if store.Bool("ENABLE_STORAGE") {
//	    ...
//	}
//
// Reads take a shared lock, writes an exclusive one. View and Update expose the
// same locks for multi-field operations so callers can read or apply a consistent
// set of values.
package settings
