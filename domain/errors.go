package domain

import "errors"

var (
	// ErrItemNotFound is returned when a feed item lookup matches nothing.
	ErrItemNotFound = errors.New("feed item not found")
	// ErrBookmarkNotFound is returned when deleting a bookmark that does not exist.
	ErrBookmarkNotFound = errors.New("bookmark not found")
	// ErrProviderUnavailable marks a total provider failure; the pipeline
	// treats it as zero candidates from that provider.
	ErrProviderUnavailable = errors.New("provider unavailable")
)
