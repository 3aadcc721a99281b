package repository

import (
	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"go.uber.org/zap"
)

// CheckoutFile restores name from the active commit. Staging is untouched.
func (r *Repository) CheckoutFile(name string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.restoreFile(head, name)
}

// CheckoutFileFromCommit restores name from the commit identified by a full or abbreviated id.
func (r *Repository) CheckoutFileFromCommit(id, name string) error {
	commit, err := r.resolveCommit(id)
	if err != nil {
		return err
	}
	return r.restoreFile(commit, name)
}

func (r *Repository) restoreFile(commit *objects.Commit, name string) error {
	hash, tracked := commit.Tracks(name)
	if !tracked {
		return preconditionError(constants.MsgFileNotInCommit)
	}

	content, err := r.loadContent(hash)
	if err != nil {
		return err
	}
	if err := r.tree.Write(name, content); err != nil {
		return err
	}

	r.logger.Debug("Restored file",
		zap.String("file", name),
		zap.String("commit", commit.Hash()))
	return nil
}

// CheckoutBranch replaces the working tree with branch's files and makes it the active branch.
func (r *Repository) CheckoutBranch(branch string) error {
	if !r.refs.BranchExists(branch) {
		return preconditionError(constants.MsgNoSuchBranch)
	}

	current, err := r.refs.CurrentBranch()
	if err != nil {
		return err
	}
	if current == branch {
		return stateError(constants.MsgCheckoutCurrent)
	}

	return r.checkoutBranch(branch)
}

// checkoutBranch switches to branch without the active-branch check. Merge reuses it to fast-forward.
func (r *Repository) checkoutBranch(branch string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	hash, err := r.refs.BranchCommit(branch)
	if err != nil {
		return err
	}
	target, err := r.store.ReadCommit(hash)
	if err != nil {
		return err
	}

	if err := r.switchTo(head, target); err != nil {
		return err
	}
	if err := r.refs.SetCurrentBranch(branch); err != nil {
		return err
	}

	r.logger.Info("Switched branch",
		zap.String("branch", branch),
		zap.String("commit", target.Hash()))
	return nil
}

// Reset checks out every file of the identified commit and moves the active branch to it.
func (r *Repository) Reset(id string) error {
	target, err := r.resolveCommit(id)
	if err != nil {
		return err
	}
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	if err := r.switchTo(head, target); err != nil {
		return err
	}
	if err := r.refs.AdvanceHead(target.Hash()); err != nil {
		return err
	}

	r.logger.Info("Reset active branch", zap.String("commit", target.Hash()))
	return nil
}
