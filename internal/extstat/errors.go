package extstat

import "errors"

var (
	// ErrNotDirectory is returned when the scan root is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrUnknownSort is returned for a sort key outside extension, count and size.
	ErrUnknownSort = errors.New("unknown sort type")

	// ErrUnknownFormat is returned for an output format outside csv and json.
	ErrUnknownFormat = errors.New("unknown output type")
)
