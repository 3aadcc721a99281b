package repository

import (
	"errors"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/refs"
)

// Branch creates a branch at the active commit without switching to it.
func (r *Repository) Branch(name string) error {
	hash, err := r.refs.HeadCommitHash()
	if err != nil {
		return err
	}

	err = r.refs.CreateBranch(name, hash)
	switch {
	case errors.Is(err, refs.ErrBranchExists):
		return stateError(constants.MsgBranchExists)
	case errors.Is(err, refs.ErrInvalidBranchName):
		return usageError(constants.MsgIncorrectOperands)
	}
	return err
}

// RmBranch deletes a branch pointer. Its commits stay in the store.
func (r *Repository) RmBranch(name string) error {
	err := r.refs.DeleteBranch(name)
	switch {
	case errors.Is(err, refs.ErrBranchNotFound):
		return preconditionError(constants.MsgBranchMissing)
	case errors.Is(err, refs.ErrCurrentBranch):
		return stateError(constants.MsgRemoveCurrentBranch)
	}
	return err
}
