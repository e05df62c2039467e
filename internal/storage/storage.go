package storage

import "errors"

var (
	ErrKeyExists  = errors.New("storage: key already exists")
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Store is the object-storage contract the upload pipeline writes to.
// Put stores raw bytes at key with no-overwrite semantics (an existing key is
// an error, never a silent replace) and returns the public URL of the object.
type Store interface {
	Put(key string, data []byte, contentType string) (string, error)
}
