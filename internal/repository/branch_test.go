package repository

import (
	"testing"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranch(t *testing.T) {
	repo, _ := newTestRepo(t)
	head := headHash(t, repo)

	require.NoError(t, repo.Branch("feature"))
	hash, err := repo.refs.BranchCommit("feature")
	require.NoError(t, err)
	assert.Equal(t, head, hash)
	assert.Equal(t, constants.DefaultBranch, currentBranch(t, repo))

	assertUserError(t, repo.Branch("feature"), constants.MsgBranchExists)
	assertUserError(t, repo.Branch("bad/name"), constants.MsgIncorrectOperands)
}

func TestBranch_DivergesAfterCommit(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.Branch("feature"))
	before, err := repo.refs.BranchCommit("feature")
	require.NoError(t, err)

	commitFiles(t, repo, "master moves", map[string]string{"a.txt": "a"})

	after, err := repo.refs.BranchCommit("feature")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.NotEqual(t, before, headHash(t, repo))
}

func TestRmBranch(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.Branch("feature"))

	require.NoError(t, repo.RmBranch("feature"))
	assert.False(t, repo.refs.BranchExists("feature"))

	assertUserError(t, repo.RmBranch("feature"), constants.MsgBranchMissing)
	assertUserError(t, repo.RmBranch(constants.DefaultBranch), constants.MsgRemoveCurrentBranch)
}
