package repository

import (
	"fmt"
	"strings"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"go.uber.org/zap"
)

// Commit snapshots the active commit's files with the staged changes applied
// and advances the active branch to it.
func (r *Repository) Commit(message string) (*objects.Commit, error) {
	if strings.TrimSpace(message) == "" {
		return nil, usageError(constants.MsgEmptyCommitMessage)
	}
	if r.index.IsEmpty() {
		return nil, stateError(constants.MsgNoChanges)
	}

	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}

	files := r.index.Apply(head.Files())
	commit, err := objects.NewCommit(message, objects.FormatTimestamp(r.now()), head.Hash(), files)
	if err != nil {
		return nil, err
	}

	// Staged blobs become durable only once a commit references them
	for _, name := range r.index.AddedNames() {
		blob, _ := r.index.Added(name)
		if err := r.store.Store(blob); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", name, err)
		}
	}

	if err := r.store.Store(commit); err != nil {
		return nil, fmt.Errorf("failed to store commit: %w", err)
	}
	if err := r.refs.AdvanceHead(commit.Hash()); err != nil {
		return nil, err
	}

	r.index.Clear()
	if err := r.index.Save(); err != nil {
		return nil, err
	}

	r.logger.Info("Created commit",
		zap.String("hash", commit.Hash()),
		zap.Int("files", len(files)))
	return commit, nil
}
