package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KostasZigo/gogitlet/internal/constants"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character SHA-1 hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepoWithGitletDir creates a temporary directory with the .gitlet/objects and
// .gitlet/commits structure. Useful for store tests that don't need refs or staging.
func SetupTestRepoWithGitletDir(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	for _, dir := range []string{constants.Objects, constants.Commits} {
		path := filepath.Join(repoPath, constants.Gitlet, dir)
		if err := os.MkdirAll(path, constants.DirPerms); err != nil {
			t.Fatalf("Failed to create %s/%s: %v", constants.Gitlet, dir, err)
		}
	}

	return repoPath
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// AssertFileExists checks that a file exists at the given path.
// Fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
// Fails the test if the file exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to NOT exist at %s", path)
	}
}

// AssertFileContent checks that the file at path holds exactly want.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Failed to read %s: %v", path, err)
		return
	}
	if string(content) != want {
		t.Errorf("%s content = %q, want %q", filepath.Base(path), content, want)
	}
}

// AssertDirExists checks that a directory exists at the given path.
// Fails the test if the directory doesn't exist.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected directory to exist at %s", path)
		return
	}
	if err != nil {
		t.Errorf("Failed to stat directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory, but it's a file", path)
	}
}

// AssertRepositoryStructure validates complete .gitlet directory structure.
// Verifies objects/, commits/, branches/, staging/ exist, HEAD names master,
// and master points at a stored commit.
func AssertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	gitletDir := filepath.Join(repoPath, constants.Gitlet)
	AssertDirExists(t, gitletDir)

	expectedDirs := []string{
		constants.Objects,
		constants.Commits,
		constants.Branches,
		constants.Staging,
	}
	for _, dir := range expectedDirs {
		AssertDirExists(t, filepath.Join(gitletDir, dir))
	}

	AssertFileExists(t, filepath.Join(gitletDir, constants.Staging, constants.StagingAdd))
	AssertFileExists(t, filepath.Join(gitletDir, constants.Staging, constants.StagingRm))

	headPath := filepath.Join(gitletDir, constants.Head)
	content, err := os.ReadFile(headPath)
	if err != nil {
		t.Fatalf("Failed to read %s file: %v", constants.Head, err)
	}

	expectedContent := constants.HeadRefPrefix + constants.Branches + "/" + constants.DefaultBranch + "\n"
	if string(content) != expectedContent {
		t.Errorf("%s content = %q, want %q", constants.Head, content, expectedContent)
	}

	master, err := os.ReadFile(filepath.Join(gitletDir, constants.Branches, constants.DefaultBranch))
	if err != nil {
		t.Fatalf("Failed to read %s branch: %v", constants.DefaultBranch, err)
	}
	AssertFileExists(t, filepath.Join(gitletDir, constants.Commits, strings.TrimSpace(string(master))))
}
