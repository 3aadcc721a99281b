package objects

import (
	"errors"

	"github.com/KostasZigo/gogitlet/utils"
)

// ErrObjectNotFound is returned when no stored object matches a hash or prefix.
var ErrObjectNotFound = errors.New("no object with that id")

// Object represents any gitlet object that can be stored
// All gitlet objects (blobs, commits) must implement this interface
type Object interface {
	// Hash returns the SHA-1 hash of the object
	Hash() string

	// Type reports which store directory the object belongs to
	Type() utils.ObjectType

	// Data returns the complete object data including header
	// Format: "<type> <size>\0<content>"
	Data() []byte
}
