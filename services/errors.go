// services/errors.go
package services

import "errors"

var (
	// ErrMonsterNotFound is returned for an unknown monster id. Its text is the
	// message shown to API callers.
	ErrMonsterNotFound = errors.New("Monster not found")
	// ErrImageDownload is returned when a remote portrait yields no body.
	ErrImageDownload = errors.New("Could not download image")
	// ErrImageTooLarge is returned when a remote portrait exceeds the size cap.
	ErrImageTooLarge = errors.New("Image is too large")
)
