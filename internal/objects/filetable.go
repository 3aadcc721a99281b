package objects

import (
	"maps"
	"slices"
)

// FileTable maps a tracked file name to its blob hash.
// Keying by name keeps every name unique within one commit.
type FileTable map[string]string

// Lookup returns the blob hash tracked for name.
func (t FileTable) Lookup(name string) (string, bool) {
	hash, ok := t[name]
	return hash, ok
}

// Tracks reports whether name is in the table.
func (t FileTable) Tracks(name string) bool {
	_, ok := t[name]
	return ok
}

// Names returns tracked names in ascending order.
func (t FileTable) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Clone returns an independent copy, never nil.
func (t FileTable) Clone() FileTable {
	clone := make(FileTable, len(t))
	maps.Copy(clone, t)
	return clone
}

// Equal reports whether both tables track the same names at the same hashes.
func (t FileTable) Equal(other FileTable) bool {
	return maps.Equal(t, other)
}
