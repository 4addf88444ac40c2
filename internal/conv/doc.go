// Package conv provides small helpers to move setting values in and out of
// their JSON form.  Encode doubles as the serialisability check applied to
// every value before it is written to a snapshot, Convert coerces decoded
// snapshot values into the Go type declared for a field.
package conv
