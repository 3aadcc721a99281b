// Package repository ties the object store, refs, staging area and working tree
// together and implements every gitlet command on top of them.
package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/KostasZigo/gogitlet/internal/config"
	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/graph"
	"github.com/KostasZigo/gogitlet/internal/logging"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"github.com/KostasZigo/gogitlet/internal/refs"
	"github.com/KostasZigo/gogitlet/internal/staging"
	"github.com/KostasZigo/gogitlet/internal/worktree"
	"go.uber.org/zap"
)

// Repository is the context every command runs against. It is built once per
// invocation by Open and holds no state beyond what is on disk.
type Repository struct {
	root      string
	gitletDir string
	config    *config.Config
	logger    *logging.Logger
	store     *objects.ObjectStore
	refs      *refs.Manager
	index     *staging.Index
	tree      *worktree.WorkTree
	graph     *graph.Graph
	now       func() time.Time
}

type Option func(*Repository)

// WithClock replaces time.Now for commit timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithLogger replaces the logger built from configuration.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// InitRepository creates .gitlet under path with the root commit on master.
func InitRepository(path string, opts ...Option) error {
	gitletDir := filepath.Join(path, constants.Gitlet)

	if err := checkRepositoryDoesNotExist(gitletDir); err != nil {
		return err
	}

	r := &Repository{root: path, gitletDir: gitletDir}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.Nop()
	}

	// Remove whatever got created if any step fails
	var initSuccess bool
	defer func() {
		if !initSuccess {
			cleanupRepository(gitletDir, r.logger)
		}
	}()

	directories := []string{
		gitletDir,
		filepath.Join(gitletDir, constants.Objects),
		filepath.Join(gitletDir, constants.Commits),
		filepath.Join(gitletDir, constants.Branches),
		filepath.Join(gitletDir, constants.Staging),
	}

	for _, directory := range directories {
		if err := os.MkdirAll(directory, constants.DirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}

	store, err := objects.NewObjectStore(path, r.logger)
	if err != nil {
		return err
	}

	root, err := objects.NewInitialCommit()
	if err != nil {
		return err
	}
	if err := store.Store(root); err != nil {
		return fmt.Errorf("failed to store initial commit: %w", err)
	}

	if err := refs.NewManager(gitletDir, r.logger).Init(root.Hash()); err != nil {
		return fmt.Errorf("failed to create %s: %w", constants.DefaultBranch, err)
	}

	index, err := staging.Load(filepath.Join(gitletDir, constants.Staging))
	if err != nil {
		return err
	}
	if err := index.Save(); err != nil {
		return fmt.Errorf("failed to create staging area: %w", err)
	}

	r.logger.Info("Initialized repository",
		zap.String("path", gitletDir),
		zap.String("root", root.Hash()))

	initSuccess = true
	return nil
}

func checkRepositoryDoesNotExist(path string) error {
	_, err := os.Stat(path)

	// If path doesn't exist there is no error
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}

	return preconditionError(constants.MsgAlreadyInitialized)
}

// Removes the entire .gitlet directory if it exists
func cleanupRepository(gitletDir string, logger *logging.Logger) {
	if _, err := os.Stat(gitletDir); err == nil {
		logger.Debug("Cleaning up partial repository initialization",
			zap.String("path", gitletDir))

		if err := os.RemoveAll(gitletDir); err != nil {
			logger.Warn("Failed to cleanup repository directory",
				zap.String("path", gitletDir),
				zap.Error(err))
		} else {
			logger.Debug("Successfully cleaned up repository directory",
				zap.String("path", gitletDir))
		}
	}
}

// Open loads the repository rooted at path.
func Open(path string, opts ...Option) (*Repository, error) {
	gitletDir := filepath.Join(path, constants.Gitlet)
	if info, err := os.Stat(gitletDir); err != nil || !info.IsDir() {
		return nil, preconditionError(constants.MsgNotInitialized)
	}

	r := &Repository{
		root:      path,
		gitletDir: gitletDir,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	cfg, err := config.Load(gitletDir)
	if err != nil {
		return nil, err
	}
	r.config = cfg

	if r.logger == nil {
		logger, err := logging.NewLogger(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		r.logger = logger
	}

	store, err := objects.NewObjectStore(path, r.logger)
	if err != nil {
		return nil, err
	}
	r.store = store

	index, err := staging.Load(filepath.Join(gitletDir, constants.Staging))
	if err != nil {
		return nil, err
	}
	r.index = index

	r.refs = refs.NewManager(gitletDir, r.logger)
	r.tree = worktree.New(path, r.logger)
	r.graph = graph.New(store, r.logger)

	return r, nil
}

func (r *Repository) Config() *config.Config {
	return r.config
}

func (r *Repository) Logger() *logging.Logger {
	return r.logger
}

// CurrentBranch returns the active branch name.
func (r *Repository) CurrentBranch() (string, error) {
	return r.refs.CurrentBranch()
}

// HeadCommit returns the commit the active branch points to.
func (r *Repository) HeadCommit() (*objects.Commit, error) {
	hash, err := r.refs.HeadCommitHash()
	if err != nil {
		return nil, err
	}
	return r.store.ReadCommit(hash)
}

// WriteBlob stores blob in the object store.
func (r *Repository) WriteBlob(blob *objects.Blob) error {
	return r.store.Store(blob)
}

// loadContent returns the bytes of a stored blob.
func (r *Repository) loadContent(hash string) ([]byte, error) {
	blob, err := r.store.ReadBlob(hash)
	if err != nil {
		return nil, err
	}
	return blob.Content(), nil
}

// resolveCommit maps a full or abbreviated id to a commit.
func (r *Repository) resolveCommit(id string) (*objects.Commit, error) {
	commit, err := r.store.ResolveCommit(id)
	if errors.Is(err, objects.ErrObjectNotFound) {
		return nil, preconditionError(constants.MsgNoCommitWithID)
	}
	return commit, err
}

// switchTo syncs the working tree from current to target and clears staging.
// Callers move refs afterwards.
func (r *Repository) switchTo(current, target *objects.Commit) error {
	if err := r.checkUntracked(current.Files(), target.Files()); err != nil {
		return err
	}
	if err := r.tree.Apply(current.Files(), target.Files(), r.loadContent); err != nil {
		return err
	}

	r.index.Clear()
	return r.index.Save()
}

// checkUntracked refuses to clobber working files the active commit does not track.
func (r *Repository) checkUntracked(tracked, target objects.FileTable) error {
	err := r.tree.CheckOverwrite(tracked, target)
	if errors.Is(err, worktree.ErrUntrackedInWay) {
		return stateError(constants.MsgUntrackedInWay)
	}
	return err
}
