// Package staging persists the pending-add and pending-remove sets between commands.
package staging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"github.com/KostasZigo/gogitlet/utils"
)

var ErrCorruptIndex = errors.New("corrupt staging index")

// entry is one staged addition. Content travels with the index so the
// blob only reaches the object store once a commit references it.
type entry struct {
	Hash    string `json:"hash"`
	Content []byte `json:"content"`
}

// Index is the staging area: files pending addition and files pending removal.
// A name is never in both sets.
type Index struct {
	dir     string
	added   map[string]entry
	removed map[string]string
}

// Load reads staging/add and staging/rm from dir. Missing files load as empty.
func Load(dir string) (*Index, error) {
	index := &Index{
		dir:     dir,
		added:   map[string]entry{},
		removed: map[string]string{},
	}

	if err := readJSON(filepath.Join(dir, constants.StagingAdd), &index.added); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, constants.StagingRm), &index.removed); err != nil {
		return nil, err
	}

	for name, e := range index.added {
		if objects.NewBlob(name, e.Content).Hash() != e.Hash {
			return nil, fmt.Errorf("%w: staged content for %s does not match its hash", ErrCorruptIndex, name)
		}
		if _, ok := index.removed[name]; ok {
			return nil, fmt.Errorf("%w: %s staged for both addition and removal", ErrCorruptIndex, name)
		}
	}

	return index, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptIndex, filepath.Base(path), err)
	}
	return nil
}

// Save writes both sets back to disk, each file replaced atomically.
func (i *Index) Save() error {
	if err := os.MkdirAll(i.dir, constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	if err := writeJSON(filepath.Join(i.dir, constants.StagingAdd), i.added); err != nil {
		return err
	}
	return writeJSON(filepath.Join(i.dir, constants.StagingRm), i.removed)
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := utils.SafeWrite(path, data, constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// StageAdd records blob as pending addition, dropping any pending removal of the same name.
func (i *Index) StageAdd(blob *objects.Blob) {
	delete(i.removed, blob.Name())
	i.added[blob.Name()] = entry{Hash: blob.Hash(), Content: blob.Content()}
}

// StageRemove records name as pending removal, dropping any pending addition.
func (i *Index) StageRemove(name, hash string) {
	delete(i.added, name)
	i.removed[name] = hash
}

// Unstage forgets name in both sets.
func (i *Index) Unstage(name string) {
	delete(i.added, name)
	delete(i.removed, name)
}

// Added returns the staged blob for name.
func (i *Index) Added(name string) (*objects.Blob, bool) {
	e, ok := i.added[name]
	if !ok {
		return nil, false
	}
	return objects.NewBlob(name, e.Content), true
}

// AddedHash returns the staged blob hash for name without rebuilding the blob.
func (i *Index) AddedHash(name string) (string, bool) {
	e, ok := i.added[name]
	return e.Hash, ok
}

func (i *Index) Removed(name string) bool {
	_, ok := i.removed[name]
	return ok
}

func (i *Index) AddedNames() []string {
	return slices.Sorted(maps.Keys(i.added))
}

func (i *Index) RemovedNames() []string {
	return slices.Sorted(maps.Keys(i.removed))
}

func (i *Index) IsEmpty() bool {
	return len(i.added) == 0 && len(i.removed) == 0
}

// Clear empties both sets in memory. Call Save to persist.
func (i *Index) Clear() {
	clear(i.added)
	clear(i.removed)
}

// Apply builds the file table a commit on top of base would track.
func (i *Index) Apply(base objects.FileTable) objects.FileTable {
	files := base.Clone()
	for name, e := range i.added {
		files[name] = e.Hash
	}
	for name := range i.removed {
		delete(files, name)
	}
	return files
}
