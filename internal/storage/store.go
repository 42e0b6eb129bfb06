// Package storage is the persistence port for the dashboard: a flat
// namespace of JSON blobs addressed by the same logical keys the browser
// build kept in localStorage. Services read and write whole values
// synchronously; there is no partial-write state visible to readers.
package storage

// Logical keys. The colon-separated names are part of the persisted schema
// and survive the move from localStorage to files.
const (
	KeyTasks     = "hris:ar:tasks"
	KeyHistory   = "hris:ar:history"
	KeyBulletins = "hris:dashboard:bulletins"
	KeyUsers     = "hris:users"
	KeySession   = "hris:session"
	KeyPrefs     = "hris:prefs"
)

// Store reads and writes named JSON blobs.
//
// Read reports ok=false when the key has never been written (or was
// deleted); that is distinct from an empty value. Write failures (disk
// full, permissions) are returned to the caller as recoverable errors.
type Store interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
	Delete(key string) error
}
