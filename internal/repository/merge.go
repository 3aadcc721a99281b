package repository

import (
	"fmt"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/merge"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"go.uber.org/zap"
)

// MergeResult reports how a merge completed.
type MergeResult struct {
	// Commit is the new merge commit, nil after a fast-forward.
	Commit *objects.Commit
	// FastForward is set when the active branch simply moved to the given branch.
	FastForward bool
	// Conflicts lists files written with conflict markers.
	Conflicts []string
}

// HasConflicts reports whether any file needs manual resolution.
func (m *MergeResult) HasConflicts() bool {
	return len(m.Conflicts) > 0
}

// Merge folds branch into the active branch. Every precondition is checked
// before anything on disk changes.
func (r *Repository) Merge(branch string) (*MergeResult, error) {
	if !r.index.IsEmpty() {
		return nil, stateError(constants.MsgUncommittedChanges)
	}
	if !r.refs.BranchExists(branch) {
		return nil, preconditionError(constants.MsgBranchMissing)
	}

	current, err := r.refs.CurrentBranch()
	if err != nil {
		return nil, err
	}
	if current == branch {
		return nil, stateError(constants.MsgMergeSelf)
	}

	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	givenHash, err := r.refs.BranchCommit(branch)
	if err != nil {
		return nil, err
	}

	isAncestor, err := r.graph.IsAncestor(givenHash, head.Hash())
	if err != nil {
		return nil, err
	}
	if isAncestor {
		return nil, stateError(constants.MsgGivenIsAncestor)
	}

	splitHash, err := r.graph.SplitPoint(head.Hash(), givenHash)
	if err != nil {
		return nil, err
	}
	if splitHash == head.Hash() {
		if err := r.checkoutBranch(branch); err != nil {
			return nil, err
		}
		r.logger.Info("Fast-forwarded",
			zap.String("branch", current),
			zap.String("to", branch))
		return &MergeResult{FastForward: true}, nil
	}

	split, err := r.store.ReadCommit(splitHash)
	if err != nil {
		return nil, err
	}
	given, err := r.store.ReadCommit(givenHash)
	if err != nil {
		return nil, err
	}

	result := merge.ThreeWay(split.Files(), head.Files(), given.Files())
	for _, d := range result.Decisions {
		r.logger.Debug("Merge decision",
			zap.String("file", d.Name),
			zap.Stringer("action", d.Action))
	}

	target, conflicted, err := r.resolveConflicts(result)
	if err != nil {
		return nil, err
	}
	if err := r.checkUntracked(head.Files(), target); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Merged %s into %s.", branch, current)
	commit, err := objects.NewMergeCommit(message, objects.FormatTimestamp(r.now()), head.Hash(), givenHash, target)
	if err != nil {
		return nil, err
	}

	for _, blob := range conflicted {
		if err := r.store.Store(blob); err != nil {
			return nil, fmt.Errorf("failed to store conflict for %s: %w", blob.Name(), err)
		}
	}
	if err := r.store.Store(commit); err != nil {
		return nil, fmt.Errorf("failed to store merge commit: %w", err)
	}

	if err := r.tree.Apply(head.Files(), target, r.loadContent); err != nil {
		return nil, err
	}
	if err := r.refs.AdvanceHead(commit.Hash()); err != nil {
		return nil, err
	}
	r.index.Clear()
	if err := r.index.Save(); err != nil {
		return nil, err
	}

	mergeResult := &MergeResult{Commit: commit}
	for _, blob := range conflicted {
		mergeResult.Conflicts = append(mergeResult.Conflicts, blob.Name())
	}

	r.logger.Info("Merged branch",
		zap.String("given", branch),
		zap.String("current", current),
		zap.String("commit", commit.Hash()),
		zap.Int("conflicts", len(conflicted)))
	return mergeResult, nil
}

// resolveConflicts builds the merged table, replacing each conflicted name
// with a blob holding both versions between conflict markers.
func (r *Repository) resolveConflicts(result merge.Result) (objects.FileTable, []*objects.Blob, error) {
	target := result.Files.Clone()

	var conflicted []*objects.Blob
	for _, d := range result.Conflicts() {
		current, err := r.contentOrEmpty(d.Current)
		if err != nil {
			return nil, nil, err
		}
		given, err := r.contentOrEmpty(d.Given)
		if err != nil {
			return nil, nil, err
		}

		blob := objects.NewBlob(d.Name, merge.ConflictContent(current, given))
		target[d.Name] = blob.Hash()
		conflicted = append(conflicted, blob)
	}

	return target, conflicted, nil
}

func (r *Repository) contentOrEmpty(hash string) ([]byte, error) {
	if hash == "" {
		return nil, nil
	}
	return r.loadContent(hash)
}
