package repository

import (
	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/objects"
)

// Log returns the first-parent history from the active commit back to the root.
func (r *Repository) Log() ([]*objects.Commit, error) {
	hash, err := r.refs.HeadCommitHash()
	if err != nil {
		return nil, err
	}
	return r.graph.History(hash)
}

// GlobalLog returns every commit ever made, in storage order.
func (r *Repository) GlobalLog() ([]*objects.Commit, error) {
	hashes, err := r.store.ListCommits()
	if err != nil {
		return nil, err
	}

	commits := make([]*objects.Commit, 0, len(hashes))
	for _, hash := range hashes {
		commit, err := r.store.ReadCommit(hash)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// Find returns the ids of every commit whose message is exactly message.
func (r *Repository) Find(message string) ([]string, error) {
	commits, err := r.GlobalLog()
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, commit := range commits {
		if commit.Message() == message {
			ids = append(ids, commit.Hash())
		}
	}
	if len(ids) == 0 {
		return nil, preconditionError(constants.MsgNoCommitWithMessage)
	}
	return ids, nil
}
