package gallery

import "fmt"

// ValidationError rejects an upload before any blob or database I/O starts.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports an image id with no row behind it.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("image %d not found", e.ID)
}

// StorageError reports that no blob backend accepted a write. It carries the
// failure of the last backend tried.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("fail to store blob: %s", e.Err.Error())
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a metadata database failure.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("gallery store error: %s", e.Err.Error())
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
