package persist

import "errors"

// ErrMalformedSnapshot is returned by Load when the snapshot cannot be decoded;
// the store is left untouched.
var ErrMalformedSnapshot = errors.New("malformed snapshot")
