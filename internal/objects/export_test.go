package objects

import (
	"testing"

	"github.com/KostasZigo/gogitlet/testutils"
	"github.com/KostasZigo/gogitlet/utils"
)

// testTimestamp is a fixed commit date used across tests.
const testTimestamp = "Thu Nov 09 20:00:05 2017 -0800"

// assertBlobHash verifies blob hash matches expected value for given name and content.
func assertBlobHash(t *testing.T, blob *Blob, name string, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(blobPayload(name, content), utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact name, content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedName string, expectedContent []byte) {
	t.Helper()

	if blob.Name() != expectedName {
		t.Fatalf("Expected name %q, got %q", expectedName, blob.Name())
	}

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Content()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// newTestStore creates an object store over a fresh .gitlet layout.
func newTestStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithGitletDir(t)
	store, err := NewObjectStore(repoPath, nil)
	if err != nil {
		t.Fatalf("Failed to create object store: %v", err)
	}

	return store, repoPath
}

// createAndStoreInitialCommit creates initial commit, stores it, and returns commit.
func createAndStoreInitialCommit(t *testing.T, store *ObjectStore) *Commit {
	t.Helper()

	commit, err := NewInitialCommit()
	if err != nil {
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	if err := store.Store(commit); err != nil {
		t.Fatalf("Failed to store commit: %v", err)
	}

	return commit
}

// createAndStoreCommit creates commit with a random message, stores it, and returns commit.
func createAndStoreCommit(t *testing.T, parentHash string, files FileTable, store *ObjectStore) *Commit {
	t.Helper()

	commit, err := NewCommit(testutils.RandomString(20), testTimestamp, parentHash, files)
	if err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}

	if err := store.Store(commit); err != nil {
		t.Fatalf("Failed to store commit: %v", err)
	}

	return commit
}

// assertCommitEqual verifies two commits match in all fields.
func assertCommitEqual(t *testing.T, actual, expected *Commit) {
	t.Helper()

	if actual.hash != expected.hash {
		t.Errorf("Hash mismatch: expected [%s], got [%s]", expected.hash, actual.hash)
	}

	if actual.message != expected.message {
		t.Errorf("Message mismatch: expected [%s], got [%s]", expected.message, actual.message)
	}

	if actual.timestamp != expected.timestamp {
		t.Errorf("Timestamp mismatch: expected [%s], got [%s]", expected.timestamp, actual.timestamp)
	}

	if !actual.files.Equal(expected.files) {
		t.Errorf("File table mismatch: expected %v, got %v", expected.files, actual.files)
	}

	if len(actual.parents) != len(expected.parents) {
		t.Fatalf("Parent count mismatch: expected %d, got %d", len(expected.parents), len(actual.parents))
	}
	for i := range expected.parents {
		if actual.parents[i] != expected.parents[i] {
			t.Errorf("Parent %d mismatch: expected [%s], got [%s]", i, expected.parents[i], actual.parents[i])
		}
	}
}
