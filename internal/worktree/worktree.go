// Package worktree reads and rewrites the plain files at the repository root.
// Subdirectories and the .gitlet directory are never tracked.
package worktree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/logging"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"github.com/KostasZigo/gogitlet/utils"
	"go.uber.org/zap"
)

var ErrUntrackedInWay = errors.New("untracked file in the way")

// ContentLoader returns the bytes of a stored blob.
type ContentLoader func(hash string) ([]byte, error)

type WorkTree struct {
	root   string
	logger *logging.Logger
}

func New(root string, logger *logging.Logger) *WorkTree {
	if logger == nil {
		logger = logging.Nop()
	}
	return &WorkTree{
		root:   root,
		logger: logger.Named("worktree"),
	}
}

func (w *WorkTree) Root() string {
	return w.root
}

func (w *WorkTree) path(name string) string {
	return filepath.Join(w.root, name)
}

// PlainFiles lists regular files at the root, sorted by name.
// Names that cannot be tracked and leftover SafeWrite scratch files are skipped.
func (w *WorkTree) PlainFiles() ([]string, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list working directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !validName(entry.Name()) ||
			strings.HasPrefix(entry.Name(), utils.TempFilePrefix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether name is a regular file at the root.
func (w *WorkTree) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	info, err := os.Lstat(w.path(name))
	return err == nil && info.Mode().IsRegular()
}

// Read returns the content of name, wrapping fs.ErrNotExist when absent.
func (w *WorkTree) Read(name string) ([]byte, error) {
	if !validName(name) {
		return nil, fmt.Errorf("invalid file name %q: %w", name, fs.ErrNotExist)
	}
	content, err := os.ReadFile(w.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return content, nil
}

// Blob snapshots name as a blob.
func (w *WorkTree) Blob(name string) (*objects.Blob, error) {
	content, err := w.Read(name)
	if err != nil {
		return nil, err
	}
	return objects.NewBlob(name, content), nil
}

// Write replaces name with content.
func (w *WorkTree) Write(name string, content []byte) error {
	if !validName(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	if err := utils.SafeWrite(w.path(name), content, constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Remove deletes name. Removing an absent file is not an error.
func (w *WorkTree) Remove(name string) error {
	if !validName(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	if err := os.Remove(w.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}

// Untracked lists working files the tracked table does not contain.
func (w *WorkTree) Untracked(tracked objects.FileTable) ([]string, error) {
	files, err := w.PlainFiles()
	if err != nil {
		return nil, err
	}

	var untracked []string
	for _, name := range files {
		if !tracked.Tracks(name) {
			untracked = append(untracked, name)
		}
	}
	return untracked, nil
}

// CheckOverwrite fails with ErrUntrackedInWay when writing target would clobber
// a working file that tracked does not contain.
func (w *WorkTree) CheckOverwrite(tracked, target objects.FileTable) error {
	untracked, err := w.Untracked(tracked)
	if err != nil {
		return err
	}

	for _, name := range untracked {
		if target.Tracks(name) {
			w.logger.Debug("Untracked file blocks overwrite", zap.String("file", name))
			return fmt.Errorf("%w: %s", ErrUntrackedInWay, name)
		}
	}
	return nil
}

// Apply makes the working tree match target: files tracked by current but not
// by target are deleted, every target file is written. All target content is
// loaded before anything on disk changes.
func (w *WorkTree) Apply(current, target objects.FileTable, load ContentLoader) error {
	contents := make(map[string][]byte, len(target))
	for _, name := range target.Names() {
		content, err := load(target[name])
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		contents[name] = content
	}

	for _, name := range current.Names() {
		if !target.Tracks(name) {
			if err := w.Remove(name); err != nil {
				return err
			}
		}
	}

	for _, name := range target.Names() {
		if err := w.Write(name, contents[name]); err != nil {
			return err
		}
	}

	w.logger.Debug("Working tree synced",
		zap.Int("removed", len(current)-countShared(current, target)),
		zap.Int("written", len(target)))
	return nil
}

func countShared(a, b objects.FileTable) int {
	shared := 0
	for name := range a {
		if b.Tracks(name) {
			shared++
		}
	}
	return shared
}

// validName accepts only names of files directly under the root that a
// commit can record. Control characters would break the commit's line format.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		name != constants.Gitlet &&
		filepath.Base(name) == name &&
		!strings.ContainsFunc(name, unicode.IsControl)
}
