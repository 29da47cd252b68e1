package repositories

import "errors"

// ErrNotFound is returned, possibly wrapped, when a lookup matches no row.
var ErrNotFound = errors.New("not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
