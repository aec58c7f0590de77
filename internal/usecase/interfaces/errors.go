package interfaces

import "errors"

// Errors every record store implementation reports the same way.
// Not-found is not an error: lookups and updates return an empty entity.
var (
	ErrDuplicateRecord = errors.New("record already exists")
	ErrVersionMismatch = errors.New("record version mismatch")
)
