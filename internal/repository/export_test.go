package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/KostasZigo/gogitlet/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock returns a clock that advances one minute per call so commits
// made in quick succession still get distinct timestamps.
func testClock() func() time.Time {
	current := time.Date(2017, time.November, 9, 20, 0, 5, 0, time.FixedZone("PST", -8*60*60))
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

// newTestRepo initializes a repository in a temp dir and opens it.
func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, InitRepository(root))

	repo, err := Open(root, WithClock(testClock()))
	require.NoError(t, err)
	return repo, root
}

// reopen loads the repository again, the way the next command invocation would.
func reopen(t *testing.T, repo *Repository) *Repository {
	t.Helper()

	fresh, err := Open(repo.root, WithClock(repo.now))
	require.NoError(t, err)
	return fresh
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	testutils.CreateTestFile(t, root, name, []byte(content))
}

// commitFiles writes, stages and commits the given files.
func commitFiles(t *testing.T, repo *Repository, message string, files map[string]string) string {
	t.Helper()

	for name, content := range files {
		writeFile(t, repo.root, name, content)
		require.NoError(t, repo.Add(name))
	}
	commit, err := repo.Commit(message)
	require.NoError(t, err)
	return commit.Hash()
}

// assertUserError checks err is a user-facing error carrying message.
func assertUserError(t *testing.T, err error, message string) {
	t.Helper()

	userErr, ok := AsError(err)
	if assert.True(t, ok, "expected user-facing error, got %v", err) {
		assert.Equal(t, message, userErr.Message)
	}
}

func assertWorkingFile(t *testing.T, root, name, content string) {
	t.Helper()
	testutils.AssertFileContent(t, filepath.Join(root, name), content)
}

func assertNoWorkingFile(t *testing.T, root, name string) {
	t.Helper()
	testutils.AssertFileNotExists(t, filepath.Join(root, name))
}

func headHash(t *testing.T, repo *Repository) string {
	t.Helper()

	head, err := repo.HeadCommit()
	require.NoError(t, err)
	return head.Hash()
}

func currentBranch(t *testing.T, repo *Repository) string {
	t.Helper()

	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	return branch
}

