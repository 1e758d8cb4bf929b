package stores

import "errors"

// ErrNotFound is returned when a document does not exist, including the
// case of a malformed object id hex string.
var ErrNotFound = errors.New("document not found")
