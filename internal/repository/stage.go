package repository

import (
	"github.com/KostasZigo/gogitlet/internal/constants"
	"go.uber.org/zap"
)

// Add stages the working copy of name. Staging content identical to the
// active commit's version unstages the file instead.
func (r *Repository) Add(name string) error {
	if !r.tree.Exists(name) {
		return preconditionError(constants.MsgFileDoesNotExist)
	}

	blob, err := r.tree.Blob(name)
	if err != nil {
		return err
	}

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	if hash, tracked := head.Tracks(name); tracked && hash == blob.Hash() {
		r.index.Unstage(name)
		r.logger.Debug("File matches current commit, unstaged", zap.String("file", name))
	} else {
		r.index.StageAdd(blob)
		r.logger.Debug("Staged file for addition",
			zap.String("file", name),
			zap.String("blob", blob.Hash()))
	}

	return r.index.Save()
}

// Remove unstages name and, if the active commit tracks it, stages its removal
// and deletes the working copy.
func (r *Repository) Remove(name string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	_, staged := r.index.AddedHash(name)
	hash, tracked := head.Tracks(name)
	if !staged && !tracked {
		return stateError(constants.MsgNoReasonToRemove)
	}

	if staged {
		r.index.Unstage(name)
	}
	if tracked {
		r.index.StageRemove(name, hash)
	}
	if err := r.index.Save(); err != nil {
		return err
	}

	if tracked {
		if err := r.tree.Remove(name); err != nil {
			return err
		}
		r.logger.Debug("Staged file for removal", zap.String("file", name))
	}
	return nil
}
