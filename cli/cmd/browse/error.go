package browse

import "errors"

// Sentinel errors.
var (
	ErrNoDocument = errors.New("no document to browse")
)
