// Package storage provides the string-keyed blob store the editor persists
// into. Each key holds one JSON document; writes replace the whole value,
// there are no partial updates.
package storage

// Store is a keyed blob store. Get reports ok=false when the key has never
// been written. Implementations must make Set atomic for a single key:
// readers see either the previous value or the new one, never a torn write.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
